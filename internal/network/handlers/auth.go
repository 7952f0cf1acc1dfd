package handlers

import (
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/helpers"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/services"
)

// LoginResponse - ответ на вход в админку
type LoginResponse struct {
	Session string `json:"session"`
	Email   string `json:"email"`
}

// LoginHandler — вход администратора: токен бэкенда остаётся в сессии,
// браузер получает токен сессии админки
func LoginHandler(i *services.Identity, s *services.Sessions) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginRequest
		if !decodeBody(w, r, &creds) {
			return
		}

		backendToken, err := i.Authenticate(r.Context(), creds)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		d := s.Open(r.Context(), creds.Email, backendToken)
		token, err := i.GenerateJWT(d.ID, d.Email)
		if err != nil {
			logger.Error("Failed to generate token", "error", err)
			s.Close(d.ID)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		w.Header().Set("Authorization", "Bearer "+token)
		writeJSON(w, http.StatusOK, LoginResponse{Session: d.ID, Email: d.Email})
	})
}

// LogoutHandler — закрытие сессии
func LogoutHandler(s *services.Sessions) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, err := helpers.GetSessionID(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Please login as admin")
			return
		}
		s.Close(sid)
		w.WriteHeader(http.StatusNoContent)
	})
}

// NotificationsHandler — накопленные уведомления сессии, лента очищается
func NotificationsHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, d.Feed.Drain())
	})
}
