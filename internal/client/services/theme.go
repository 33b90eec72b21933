package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/quickchat/internal/common"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

// ThemeState is the dark/light flag.
type ThemeState struct {
	mu    sync.RWMutex
	dark  bool
	store Store
}

// NewThemeState restores the flag from storage; anything but "dark" is light.
func NewThemeState(ctx context.Context, store Store) *ThemeState {
	var v string
	store.Load(ctx, common.KeyTheme, &v)
	return &ThemeState{dark: v == themeDark, store: store}
}

func (t *ThemeState) IsDark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Toggle flips the flag, persists it and returns the new value.
func (t *ThemeState) Toggle(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dark = !t.dark
	v := themeLight
	if t.dark {
		v = themeDark
	}
	t.store.Save(ctx, common.KeyTheme, v)
	return t.dark
}
