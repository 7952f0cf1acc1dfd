package client

import (
	"context"
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/models"
)

const (
	ordersPath       = "/api/order/all"
	orderActionPath  = "/api/order/admin/confirm-payment"
	requestProofPath = "/api/order/admin/request-proof"
)

// OrdersAPI - операции бэкенда над заказами, которые нужны админке
type OrdersAPI interface {
	GetOrders(ctx context.Context) ([]models.Order, error)
	OrderAction(ctx context.Context, req models.ActionRequest) error
	RequestProof(ctx context.Context, orderID string) (*models.ProofResponse, error)
}

// GetOrders - полный список заказов, видимых администратору, в порядке бэкенда
func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	var result models.OrdersResponse
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: ordersPath}, nil, &result); err != nil {
		return nil, err
	}
	if result.Orders == nil {
		return []models.Order{}, nil
	}
	return result.Orders, nil
}

// OrderAction - единственный изменяющий заказ вызов
func (c *Client) OrderAction(ctx context.Context, req models.ActionRequest) error {
	return c.doJSON(ctx, request{method: http.MethodPost, path: orderActionPath}, req, nil)
}

// RequestProof - повторный запрос подтверждения оплаты у покупателя
func (c *Client) RequestProof(ctx context.Context, orderID string) (*models.ProofResponse, error) {
	var result models.ProofResponse
	if err := c.doJSON(ctx, request{method: http.MethodPost, path: requestProofPath}, models.ProofRequest{OrderID: orderID}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
