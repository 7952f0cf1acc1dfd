package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/network/middleware"
	"github.com/denmor86/ya-shopadmin/internal/services"
	"github.com/denmor86/ya-shopadmin/internal/validators"
	json "github.com/goccy/go-json"
)

// ErrorResponse - тело ответа с ошибкой для браузера
type ErrorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Message: msg})
}

// statusFor - HTTP-статус для ошибки сервиса
func statusFor(err error) int {
	var rateErr *client.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, services.ErrEmptyOrderID),
		errors.Is(err, services.ErrUnknownAction),
		errors.Is(err, validators.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, client.ErrRejected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// writeServiceError - текст уже подготовлен сервисом для пользователя
func writeServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()
	var actionErr *services.ActionError
	if errors.As(err, &actionErr) {
		msg = actionErr.Message
	}
	writeError(w, statusFor(err), msg)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warn("Invalid request format", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// dashboard - сессия из контекста; без неё 401
func dashboard(w http.ResponseWriter, r *http.Request) (*services.Dashboard, bool) {
	d, ok := middleware.DashboardFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Please login as admin")
		return nil, false
	}
	return d, true
}
