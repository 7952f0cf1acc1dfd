package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы оплаты заказа, как их отдаёт бэкенд
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusHalfPaid = "Half-Paid"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRejected = "Rejected"
)

// ActionKind - действие администратора над заказом
type ActionKind string

const (
	ActionConfirm      ActionKind = "confirm"
	ActionReject       ActionKind = "reject"
	ActionMarkHalf     ActionKind = "mark-half"
	ActionRequestProof ActionKind = "request-proof"
)

// ActionKinds - закрытый набор действий в порядке отображения кнопок
var ActionKinds = []ActionKind{ActionConfirm, ActionReject, ActionMarkHalf, ActionRequestProof}

// Valid проверяет, что действие входит в закрытый набор
func (k ActionKind) Valid() bool {
	for _, known := range ActionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// OrderItem - позиция заказа
type OrderItem struct {
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	Price              decimal.Decimal `json:"price"`
	Total              decimal.Decimal `json:"total"`
	Key                string          `json:"key,omitempty"`
	Variant            string          `json:"variant,omitempty"`
	VariantColor       string          `json:"variantColor,omitempty"`
	EngravingFirstName string          `json:"engravingFirstName,omitempty"`
	EngravingLastName  string          `json:"engravingLastName,omitempty"`
}

// PaymentProof - загруженное клиентом подтверждение оплаты
type PaymentProof struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// HistoryEntry - запись журнала действий над заказом (только добавление)
type HistoryEntry struct {
	At        time.Time `json:"at"`
	AdminID   string    `json:"adminId,omitempty"`
	AdminName string    `json:"adminName,omitempty"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason,omitempty"`
}

// Order - заказ покупателя, принадлежит бэкенду; клиент его не изменяет
type Order struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Note           string          `json:"note,omitempty"`
	Items          []OrderItem     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Shipping       decimal.Decimal `json:"shipping"`
	Total          decimal.Decimal `json:"total"`
	AdvanceAmount  decimal.Decimal `json:"advanceAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
	PaymentStatus  string          `json:"paymentStatus"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	TransactionRef string          `json:"transactionRef,omitempty"`
	SenderLast4    string          `json:"senderLast4,omitempty"`
	PaymentProofs  []PaymentProof  `json:"paymentProofs,omitempty"`
	ActionsHistory []HistoryEntry  `json:"actionsHistory,omitempty"`
}

// OrdersResponse - ответ бэкенда со списком заказов
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// ActionRequest - запрос на смену состояния заказа, живёт один клик
type ActionRequest struct {
	OrderID string     `json:"orderId"`
	Action  ActionKind `json:"action"`
	Reason  string     `json:"reason,omitempty"`
}

// ProofRequest - запрос повторной загрузки подтверждения оплаты
type ProofRequest struct {
	OrderID string `json:"orderId"`
}

// ProofResponse - подтверждение бэкенда на запрос подтверждения оплаты
type ProofResponse struct {
	Message    string `json:"message,omitempty"`
	UploadLink string `json:"uploadLink,omitempty"`
}
