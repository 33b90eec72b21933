package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath    = "/api/auth/local"
	registerPath = "/api/auth/local/register"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// apiError is the error envelope of the auth backend.
type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

type HTTPClient struct {
	endpointURL string
	r           *resty.Client
}

func NewHTTPClient(endpointURL string, timeout time.Duration) *HTTPClient {
	r := resty.New().
		SetBaseURL(endpointURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{endpointURL: endpointURL, r: r}
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	req := registerRequest{Username: username, Email: email, Password: password}
	return c.post(ctx, "register", registerPath, req)
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*models.AuthResult, error) {
	req := loginRequest{Identifier: identifier, Password: password}
	return c.post(ctx, "login", loginPath, req)
}

func (c *HTTPClient) post(ctx context.Context, op, path string, body any) (*models.AuthResult, error) {
	var result models.AuthResult
	var apiErr apiError

	resp, err := c.r.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		SetError(&apiErr).
		Post(path)

	if err != nil {
		return nil, common.Network(op, fmt.Errorf("%w: %v", common.ErrUnavailable, err))
	}

	if resp.IsError() {
		return nil, c.mapError(op, resp.StatusCode(), apiErr.Error.Message)
	}

	if result.JWT == "" {
		return nil, common.Network(op, errors.New("malformed auth response: missing jwt"))
	}

	return &result, nil
}

func (c *HTTPClient) mapError(op string, status int, msg string) error {
	var err error
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnauthorized, status == http.StatusForbidden:
		err = common.ErrUnauthorized
	case status >= http.StatusInternalServerError:
		err = common.ErrUnavailable
	default:
		err = fmt.Errorf("unexpected status %d", status)
	}

	if msg != "" {
		err = fmt.Errorf("%w: %s", err, msg)
	}
	return common.Network(op, err)
}
