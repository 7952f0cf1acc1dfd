package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/denmor86/ya-shopadmin/internal/models"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - клиент REST API магазина. Токен администратора неизменяем,
// для другого токена создаётся копия через WithToken.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
	token      string
}

func NewClient(baseURL string, client HTTPClient, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter(0)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		limiter:    limiter,
	}
}

// WithToken - копия клиента с bearer-токеном; транспорт и лимитер общие
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = strings.TrimSpace(token)
	return &cp
}

// Authorized - есть ли у клиента токен
func (c *Client) Authorized() bool {
	return c.token != ""
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	// public - запрос допустим без токена
	public bool
}

func (c *Client) doJSON(ctx context.Context, req request, in any, out any) error {
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		req.body = bytes.NewReader(data)
		req.contentType = "application/json"
	}
	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	if !r.public && c.token == "" {
		return ErrUnauthorized
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", r.method, r.path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := HandleErrorResponse(resp.StatusCode, resp.Header, body)
		if rateLimitErr, ok := err.(*RateLimitError); ok {
			c.limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	// 2xx с success:false - тоже отказ
	var status models.MessageResponse
	if err := json.Unmarshal(body, &status); err == nil && status.Success != nil && !*status.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: status.Message, Err: ErrRejected}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// HandleErrorResponse переводит ответ с неуспешным статусом в ошибку
func HandleErrorResponse(statusCode int, headers http.Header, body []byte) error {
	var payload models.MessageResponse
	_ = json.Unmarshal(body, &payload)

	switch {
	case statusCode == http.StatusTooManyRequests:
		return NewRateLimitError(headers)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &APIError{StatusCode: statusCode, Message: payload.Message, Err: ErrUnauthorized}
	case statusCode >= http.StatusInternalServerError:
		return &APIError{StatusCode: statusCode, Message: payload.Message, Err: ErrServiceUnavailable}
	default:
		return &APIError{StatusCode: statusCode, Message: payload.Message, Err: ErrRejected}
	}
}
