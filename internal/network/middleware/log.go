package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// LogHandle - журнал запросов к админке, ответы 5xx уровнем Warn
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		h.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
		}
		if status >= http.StatusInternalServerError {
			logger.Warn("dashboard request failed", fields...)
			return
		}
		logger.Info("dashboard request", fields...)
	})
}
