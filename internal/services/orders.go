package services

import (
	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
)

// NewOrders - список заказов сессии (Order List Store)
func NewOrders(api client.OrdersAPI, notifier notify.Notifier) *Editor[models.Order] {
	return NewEditor("orders", api.GetOrders, notifier, MsgFetchOrdersFailed)
}
