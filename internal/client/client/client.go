package client

import (
	"context"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
)

// Client is the auth API contract used by the auth flow.
type Client interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*models.AuthResult, error)
}
