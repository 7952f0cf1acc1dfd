package client

import (
	"context"
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/models"
)

const adminLoginPath = "/api/user/admin"

// Login - вход администратора, выдача токена бэкендом
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error) {
	var result models.LoginResponse
	err := c.doJSON(ctx, request{method: http.MethodPost, path: adminLoginPath, public: true}, creds, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
