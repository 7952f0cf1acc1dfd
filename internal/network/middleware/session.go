package middleware

import (
	"context"
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/helpers"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/services"
)

type dashboardKey struct{}

// SessionHandle - находит открытую сессию по токену; закрытая или
// неизвестная сессия - 401, без обращений к бэкенду
func SessionHandle(sessions *services.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, err := helpers.GetSessionID(r.Context())
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			d, ok := sessions.Get(sid)
			if !ok {
				logger.Warn("Session not found", "session", sid)
				http.Error(w, "Session expired", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), dashboardKey{}, d)))
		})
	}
}

// DashboardFrom - сессия, положенная SessionHandle
func DashboardFrom(ctx context.Context) (*services.Dashboard, bool) {
	d, ok := ctx.Value(dashboardKey{}).(*services.Dashboard)
	return d, ok
}
