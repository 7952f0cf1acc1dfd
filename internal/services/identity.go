package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/config"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/validators"
	"github.com/go-chi/jwtauth/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	TokenSecretAlgo     = "HS256"
	MsgInvalidLogin     = "Invalid credentials. Please try again."
	ClaimSession        = "sid"
	ClaimEmail          = "email"
	defaultTokenTimeout = 12 * time.Hour
)

// Identity - вход администратора через бэкенд и токен сессии админки
type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Backend *client.Client
	TTL     time.Duration
}

// Создание сервиса
func NewIdentity(cfg config.Config, backend *client.Client) *Identity {
	ttl := cfg.Server.SessionTTL
	if ttl <= 0 {
		ttl = defaultTokenTimeout
	}
	tokenAuth := jwtauth.New(TokenSecretAlgo, []byte(cfg.Server.SessionSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Backend: backend, TTL: ttl}
}

// Authenticate - проверка учётных данных бэкендом, возвращает его bearer-токен
func (i *Identity) Authenticate(ctx context.Context, creds models.LoginRequest) (string, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validators.Validate(creds); err != nil {
		return "", &ActionError{Message: "Email and password are required", Err: err}
	}
	logger.Info("Authenticate admin", "email", creds.Email)

	resp, err := i.Backend.Login(ctx, creds)
	if err != nil {
		logger.Warn("Admin login rejected", "email", creds.Email, "error", err)
		return "", &ActionError{Message: client.Message(err, MsgInvalidLogin), Err: err}
	}
	token := strings.TrimSpace(resp.Token)
	if token == "" {
		msg := resp.Message
		if msg == "" {
			msg = MsgInvalidLogin
		}
		logger.Warn("Admin login without token", "email", creds.Email)
		return "", &ActionError{Message: msg, Err: ErrInvalidCredentials}
	}

	logger.Info("Admin authenticated", "email", creds.Email)
	return token, nil
}

// Создание строки JWT токена сессии
func (i *Identity) GenerateJWT(sessionID, email string) (string, error) {
	claims := map[string]interface{}{
		ClaimSession: sessionID,
		ClaimEmail:   email,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, i.TTL)

	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
