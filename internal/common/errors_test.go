package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_NilCauseIsNil(t *testing.T) {
	require.NoError(t, NewError(KindStorage, "save", nil))
}

func TestError_MessageAndUnwrap(t *testing.T) {
	err := Validation("send", ErrEmptyMessage)

	assert.Equal(t, "send: validation error: message cannot be empty", err.Error())
	assert.ErrorIs(t, err, ErrEmptyMessage)

	noOp := &Error{Kind: KindNetwork, Err: ErrUnavailable}
	assert.Equal(t, "network error: server unavailable", noOp.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("op", ErrRequiredField), KindValidation},
		{"network", Network("op", ErrUnauthorized), KindNetwork},
		{"storage wrapped", fmt.Errorf("outer: %w", Storage("op", errors.New("disk"))), KindStorage},
		{"connection", Connection("dial", ErrNotConnected), KindConnection},
		{"plain", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "storage", KindStorage.String())
	assert.Equal(t, "connection", KindConnection.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestChatMessagesKey(t *testing.T) {
	assert.Equal(t, "chatMessages_default", ChatMessagesKey("default"))
	assert.Equal(t, "chatMessages_", ChatMessagesKey(""))
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
