package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/common"
)

// UserState is the authenticated-user flag: the current user and bearer
// token, both persisted and restored together.
type UserState struct {
	mu    sync.RWMutex
	user  *models.User
	token string
	store Store
}

func NewUserState(store Store) *UserState {
	return &UserState{store: store}
}

// Restore reloads user and token from storage and reports whether a user
// was found. A missing token is tolerated.
func (s *UserState) Restore(ctx context.Context) bool {
	var u models.User
	if !s.store.Load(ctx, common.KeyUser, &u) {
		return false
	}
	var tok string
	s.store.Load(ctx, common.KeyToken, &tok)

	s.mu.Lock()
	s.user = &u
	s.token = tok
	s.mu.Unlock()
	return true
}

// SignIn stores a successful auth result in memory and in storage.
func (s *UserState) SignIn(ctx context.Context, res *models.AuthResult) {
	u := res.User

	s.mu.Lock()
	s.user = &u
	s.token = res.JWT
	s.mu.Unlock()

	s.store.Save(ctx, common.KeyUser, u)
	s.store.Save(ctx, common.KeyToken, res.JWT)
}

// SignOut forgets the user and removes it from storage.
func (s *UserState) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.store.RemoveAll(ctx, common.KeyUser, common.KeyToken)
}

func (s *UserState) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// User returns a copy of the current user, or nil.
func (s *UserState) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *UserState) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

func (s *UserState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
