package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/quickchat/internal/client/client"
	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/common"
)

// User-facing failure messages, one per auth mode. The underlying error is
// logged, never shown.
const (
	LoginFailedMessage    = "Login failed. Please check your credentials."
	RegisterFailedMessage = "Registration failed. Please try again."
)

// AuthService exchanges credentials for a user record and a bearer token.
//
// Contract:
//   - Login: identifier (username or email) + password.
//   - Register: username + email + password.
//
// Missing fields fail with a KindValidation error wrapping
// common.ErrRequiredField before any request is made. Persisting the
// result is up to the caller.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*models.AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*models.AuthResult, error)
}

type authService struct {
	client client.Client
}

func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, identifier, password string) (*models.AuthResult, error) {
	if err := required("login", field{"identifier", identifier}, field{"password", password}); err != nil {
		return nil, err
	}

	res, err := a.client.Login(ctx, identifier, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return res, nil
}

func (a *authService) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	if err := required("register", field{"username", username}, field{"email", email}, field{"password", password}); err != nil {
		return nil, err
	}

	res, err := a.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return res, nil
}

type field struct {
	name  string
	value string
}

func required(op string, fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return common.Validation(op, fmt.Errorf("%w: %s", common.ErrRequiredField, strings.Join(missing, ", ")))
}

// FailureMessage is what the user sees when an auth call fails: validation
// errors verbatim, anything else as the generic message for the mode.
func FailureMessage(err error, generic string) string {
	var e *common.Error
	if errors.As(err, &e) && e.Kind == common.KindValidation {
		return e.Err.Error()
	}
	return generic
}
