package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeState_DefaultsToLight(t *testing.T) {
	th := NewThemeState(context.Background(), newStore(t))
	assert.False(t, th.IsDark())
}

func TestThemeState_RestoresDark(t *testing.T) {
	s := newStore(t)
	s.Save(context.Background(), "theme", "dark")

	assert.True(t, NewThemeState(context.Background(), s).IsDark())
}

func TestThemeState_ToggleTwiceRestoresPersistedValue(t *testing.T) {
	tests := []struct {
		name    string
		initial any
		want    any
	}{
		{name: "from dark", initial: "dark", want: "dark"},
		{name: "from light", initial: "light", want: "light"},
		{name: "unset becomes light", initial: nil, want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			if tt.initial != nil {
				s.Save(ctx, "theme", tt.initial)
			}

			th := NewThemeState(ctx, s)
			before := th.IsDark()
			assert.Equal(t, !before, th.Toggle(ctx))
			assert.Equal(t, before, th.Toggle(ctx))

			assert.Equal(t, tt.want, rawValue(t, s, "theme"))
		})
	}
}
