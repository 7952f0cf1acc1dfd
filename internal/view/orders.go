// Package view собирает карточки заказов для отображения: данные заказа
// без изменений плюс состояние кнопок действий.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/models"
)

// Badge - цвет плашки статуса оплаты
type Badge string

const (
	BadgeGreen  Badge = "green"
	BadgeYellow Badge = "yellow"
	BadgeBlue   Badge = "blue"
	BadgeRed    Badge = "red"
)

type ItemLine struct {
	Text      string `json:"text"`
	Color     string `json:"color,omitempty"`
	Engraving string `json:"engraving,omitempty"`
}

type Totals struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
	Advance  string `json:"advance,omitempty"`
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

type ActionButton struct {
	Action  models.ActionKind `json:"action"`
	Label   string            `json:"label"`
	Enabled bool              `json:"enabled"`
}

// OrderCard - одна карточка заказа
type OrderCard struct {
	ID             string                `json:"id"`
	PlacedAt       string                `json:"placedAt"`
	Status         string                `json:"status"`
	Badge          Badge                 `json:"badge"`
	Method         string                `json:"method,omitempty"`
	TransactionRef string                `json:"transactionRef,omitempty"`
	SenderLast4    string                `json:"senderLast4,omitempty"`
	Customer       Customer              `json:"customer"`
	Items          []ItemLine            `json:"items"`
	Totals         Totals                `json:"totals"`
	Proofs         []models.PaymentProof `json:"proofs,omitempty"`
	History        []string              `json:"history,omitempty"`
	Busy           bool                  `json:"busy"`
	Actions        []ActionButton        `json:"actions"`
}

var actionLabels = map[models.ActionKind]string{
	models.ActionConfirm:      "Mark as Paid",
	models.ActionReject:       "Mark as Rejected",
	models.ActionMarkHalf:     "Mark as Half-Paid",
	models.ActionRequestProof: "Request Proof",
}

const busyLabel = "Processing..."

// BuildOrders - карточки в порядке снимка, без сортировки и фильтрации
func BuildOrders(orders []models.Order, busy func(id string) bool, currency string) []OrderCard {
	cards := make([]OrderCard, 0, len(orders))
	for _, o := range orders {
		cards = append(cards, BuildOrder(o, busy(o.ID), currency))
	}
	return cards
}

func BuildOrder(o models.Order, busy bool, currency string) OrderCard {
	status := o.PaymentStatus
	if status == "" {
		status = models.PaymentStatusPending
	}

	card := OrderCard{
		ID:             o.ID,
		PlacedAt:       formatTime(o.CreatedAt),
		Status:         status,
		Badge:          StatusBadge(status),
		Method:         strings.ToUpper(o.PaymentMethod),
		TransactionRef: o.TransactionRef,
		SenderLast4:    o.SenderLast4,
		Customer: Customer{
			Name:    o.Name,
			Phone:   o.Phone,
			Email:   o.Email,
			Address: joinNonEmpty(", ", o.Address, o.City, o.State),
			Note:    o.Note,
		},
		Items: make([]ItemLine, 0, len(o.Items)),
		Totals: Totals{
			Subtotal: money(currency, o.Subtotal.String()),
			Shipping: money(currency, o.Shipping.String()),
			Total:    money(currency, o.Total.String()),
		},
		Proofs: o.PaymentProofs,
		Busy:   busy,
	}
	if o.AdvanceAmount.IsPositive() {
		card.Totals.Advance = money(currency, o.AdvanceAmount.String())
	}

	for _, it := range o.Items {
		card.Items = append(card.Items, ItemLine{
			Text:      fmt.Sprintf("%s × %d = %s", it.Name, it.Quantity, money(currency, it.Total.String())),
			Color:     ItemColor(it),
			Engraving: EngravingName(it),
		})
	}
	for _, h := range o.ActionsHistory {
		card.History = append(card.History, HistoryLine(h))
	}
	for _, kind := range models.ActionKinds {
		label := actionLabels[kind]
		if busy {
			label = busyLabel
		}
		card.Actions = append(card.Actions, ActionButton{Action: kind, Label: label, Enabled: !busy})
	}
	return card
}

// StatusBadge - цвет по статусу оплаты
func StatusBadge(status string) Badge {
	switch status {
	case models.PaymentStatusPaid:
		return BadgeGreen
	case models.PaymentStatusPending, "":
		return BadgeYellow
	case models.PaymentStatusHalfPaid:
		return BadgeBlue
	default:
		return BadgeRed
	}
}

// ItemColor: variantColor, затем variant, затем часть ключа после "_"
func ItemColor(it models.OrderItem) string {
	if it.VariantColor != "" {
		return it.VariantColor
	}
	if it.Variant != "" {
		return it.Variant
	}
	if parts := strings.Split(it.Key, "_"); len(parts) > 1 {
		return parts[1]
	}
	return ""
}

func EngravingName(it models.OrderItem) string {
	return strings.TrimSpace(strings.TrimSpace(it.EngravingFirstName) + " " + strings.TrimSpace(it.EngravingLastName))
}

// HistoryLine - строка журнала действий, причина только если указана
func HistoryLine(h models.HistoryEntry) string {
	admin := h.AdminName
	if admin == "" {
		admin = h.AdminID
	}
	if admin == "" {
		admin = "admin"
	}
	line := fmt.Sprintf("%s — %s — %s", formatTime(h.At), admin, h.Action)
	if h.Reason != "" {
		line += " — " + h.Reason
	}
	return line
}

func money(currency, amount string) string {
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
