package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/services"
	"github.com/denmor86/ya-shopadmin/internal/view"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

// OrdersResponse - вид списка заказов
type OrdersResponse struct {
	Orders []view.OrderCard `json:"orders"`
}

// ActionBody - необязательная причина (только для reject)
type ActionBody struct {
	Reason string `json:"reason"`
}

// GetOrdersHandler — текущий снимок заказов с состоянием кнопок
func GetOrdersHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		cards := view.BuildOrders(d.Orders.Snapshot(), busyLookup(d.Actions.States()), d.Currency)
		writeJSON(w, http.StatusOK, OrdersResponse{Orders: cards})
	})
}

// busyLookup - Busy по id заказа; id в состояниях хранятся без пробелов
func busyLookup(states map[string]services.ActionState) func(id string) bool {
	return func(id string) bool {
		return states[strings.TrimSpace(id)] == services.Busy
	}
}

// ReloadOrdersHandler — ручная перезагрузка списка
func ReloadOrdersHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		if err := d.Orders.Load(r.Context()); err != nil {
			writeError(w, statusFor(err), d.Orders.LoadFailed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// OrderActionHandler — действие над заказом; повторное нажатие, пока
// заказ занят, - 409 без запроса к бэкенду
func OrderActionHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		var body ActionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		orderID := chi.URLParam(r, "orderID")
		kind := models.ActionKind(chi.URLParam(r, "action"))
		if err := d.Actions.Perform(r.Context(), orderID, kind, body.Reason); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// RequestProofHandler — повторный запрос подтверждения оплаты
func RequestProofHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		ack, err := d.Actions.RequestProof(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ack)
	})
}

// WaitOrdersHandler — ожидание замены снимка заказов (long-poll).
// 204 - список изменился, 304 - истёк таймаут ожидания.
func WaitOrdersHandler(timeout time.Duration) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		updates, unsubscribe := d.Orders.Store.Subscribe()
		defer unsubscribe()

		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-updates:
			w.WriteHeader(http.StatusNoContent)
		case <-timer.C:
			w.WriteHeader(http.StatusNotModified)
		case <-r.Context().Done():
		}
	})
}
