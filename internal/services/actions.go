package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
)

var (
	ErrBusy          = errors.New("order action already in progress")
	ErrEmptyOrderID  = errors.New("order id is empty")
	ErrUnknownAction = errors.New("unknown order action")
)

const (
	MsgOrderUpdated      = "Order updated"
	MsgUpdateFailed      = "Update failed"
	MsgProofRequested    = "Proof request sent"
	MsgProofFailed       = "Failed to request proof"
	MsgFetchOrdersFailed = "Failed to fetch orders"
)

// ActionState - состояние заказа с точки зрения админки
type ActionState int

const (
	Idle ActionState = iota
	Busy
)

func (s ActionState) String() string {
	if s == Busy {
		return "busy"
	}
	return "idle"
}

// Reloader - полная перезагрузка списка заказов
type Reloader interface {
	Load(ctx context.Context) error
}

// OrderActions - смена состояния одного заказа с защитой от повторного нажатия.
// Пока запрос по заказу не завершился, новые запросы по нему отклоняются;
// другие заказы независимы.
type OrderActions struct {
	API      client.OrdersAPI
	Orders   Reloader
	Notifier notify.Notifier

	mu   sync.Mutex
	busy map[string]struct{}
}

func NewOrderActions(api client.OrdersAPI, orders Reloader, notifier notify.Notifier) *OrderActions {
	return &OrderActions{
		API:      api,
		Orders:   orders,
		Notifier: notifier,
		busy:     make(map[string]struct{}),
	}
}

// State - состояние конкретного заказа
func (a *OrderActions) State(orderID string) ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.busy[strings.TrimSpace(orderID)]; ok {
		return Busy
	}
	return Idle
}

// States - заказы в состоянии Busy; отсутствующие в карте - Idle
func (a *OrderActions) States() map[string]ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	states := make(map[string]ActionState, len(a.busy))
	for id := range a.busy {
		states[id] = Busy
	}
	return states
}

// Perform - действие над заказом. reason передаётся только для reject и как есть.
func (a *OrderActions) Perform(ctx context.Context, orderID string, kind models.ActionKind, reason string) error {
	id := strings.TrimSpace(orderID)
	kind = models.ActionKind(strings.TrimSpace(string(kind)))
	if id == "" {
		return ErrEmptyOrderID
	}
	if !kind.Valid() {
		return ErrUnknownAction
	}
	if kind == models.ActionRequestProof {
		_, err := a.RequestProof(ctx, id)
		return err
	}

	req := models.ActionRequest{OrderID: id, Action: kind}
	if kind == models.ActionReject {
		req.Reason = reason
	}

	// отмена запроса вызывающим не отменяет работу на сервере
	callCtx := context.WithoutCancel(ctx)
	err := a.exclusive(id, func() error {
		logger.Info("Order action", "order", id, "action", kind)
		return a.API.OrderAction(callCtx, req)
	})
	if errors.Is(err, ErrBusy) {
		return err
	}
	if err != nil {
		return a.fail(id, err, MsgUpdateFailed)
	}

	a.Notifier.Success(MsgOrderUpdated)
	// ошибку перезагрузки уже показал Orders, действие при этом успешно
	_ = a.Orders.Load(callCtx)
	return nil
}

// RequestProof - повторный запрос подтверждения оплаты, тот же протокол Busy
func (a *OrderActions) RequestProof(ctx context.Context, orderID string) (*models.ProofResponse, error) {
	id := strings.TrimSpace(orderID)
	if id == "" {
		return nil, ErrEmptyOrderID
	}

	callCtx := context.WithoutCancel(ctx)
	var ack *models.ProofResponse
	err := a.exclusive(id, func() error {
		logger.Info("Order action", "order", id, "action", models.ActionRequestProof)
		var err error
		ack, err = a.API.RequestProof(callCtx, id)
		return err
	})
	if errors.Is(err, ErrBusy) {
		return nil, err
	}
	if err != nil {
		return nil, a.fail(id, err, MsgProofFailed)
	}
	if ack == nil {
		ack = &models.ProofResponse{}
	}

	msg := MsgProofRequested
	if ack.Message != "" {
		msg = ack.Message
	}
	a.Notifier.Success(msg)
	_ = a.Orders.Load(callCtx)
	return ack, nil
}

// exclusive: Idle -> Busy -> вызов -> Idle при любом исходе
func (a *OrderActions) exclusive(id string, call func() error) error {
	a.mu.Lock()
	if _, ok := a.busy[id]; ok {
		a.mu.Unlock()
		logger.Debug("Order is busy", "order", id)
		return ErrBusy
	}
	a.busy[id] = struct{}{}
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		delete(a.busy, id)
		a.mu.Unlock()
	}()
	return call()
}

func (a *OrderActions) fail(id string, err error, fallback string) error {
	msg := client.Message(err, fallback)
	logger.Warn("Order action failed", "order", id, "error", err)
	a.Notifier.Error(msg)
	return &ActionError{Message: msg, Err: err}
}
