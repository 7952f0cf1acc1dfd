package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/services"
	"github.com/go-chi/jwtauth/v5"
)

// GetSessionID - извлекает id сессии админки из контекста JWT токена
func GetSessionID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("undefined token: %w", err)
	}
	sid, ok := claims[services.ClaimSession].(string)
	if !ok || sid == "" {
		logger.Warn("Undefined session from token")
		return "", fmt.Errorf("undefined session")
	}
	return sid, nil
}
