package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/quickchat/internal/common"
)

// SessionRegistry is the ordered set of known session names plus the
// current-session pointer. Names are unique and kept in creation order.
type SessionRegistry struct {
	mu      sync.RWMutex
	names   []string
	current string
	store   Store
}

// NewSessionRegistry restores the name list from storage. The current
// pointer always starts empty.
func NewSessionRegistry(ctx context.Context, store Store) *SessionRegistry {
	var names []string
	store.Load(ctx, common.KeyChatSessions, &names)

	r := &SessionRegistry{store: store}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if !slices.Contains(r.names, n) {
			r.names = append(r.names, n)
		}
	}
	return r
}

// CreateSession appends name unless it is already known and reports
// whether it did. The registry is persisted only when it changed.
func (r *SessionRegistry) CreateSession(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, common.Validation("create session", fmt.Errorf("session name: %w", common.ErrRequiredField))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.names, name) {
		return false, nil
	}
	r.names = append(r.names, name)
	r.store.Save(ctx, common.KeyChatSessions, r.names)
	return true, nil
}

// LoadSession points current at name. Membership is not checked.
func (r *SessionRegistry) LoadSession(name string) {
	r.mu.Lock()
	r.current = name
	r.mu.Unlock()
}

func (r *SessionRegistry) ClearCurrentSession() {
	r.mu.Lock()
	r.current = ""
	r.mu.Unlock()
}

func (r *SessionRegistry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Sessions returns a copy of the names in creation order.
func (r *SessionRegistry) Sessions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

func (r *SessionRegistry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.names, name)
}

// LastSession returns the persisted last-used session name.
func (r *SessionRegistry) LastSession(ctx context.Context) (string, bool) {
	var name string
	if !r.store.Load(ctx, common.KeyLastSession, &name) || name == "" {
		return "", false
	}
	return name, true
}

// RememberSession persists name as the last-used session.
func (r *SessionRegistry) RememberSession(ctx context.Context, name string) {
	r.store.Save(ctx, common.KeyLastSession, name)
}
