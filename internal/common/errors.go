// Package common defines shared constants and sentinel errors used across
// client layers of quickchat. Callers should use errors.Is to match the
// sentinels and KindOf to classify a failure.
package common

import (
	"errors"
	"fmt"
)

var (
	// Validation errors, reported before any network or storage effect.
	ErrEmptyMessage  = errors.New("message cannot be empty")
	ErrRequiredField = errors.New("required field is missing")
	ErrNoSession     = errors.New("no active chat session")

	// Auth API errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Relay errors.
	ErrNotConnected = errors.New("not connected")
)

// Kind classifies failures for programmatic handling.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNetwork
	KindStorage
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindStorage:
		return "storage"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// Error is a tagged error: Kind says which class of failure happened,
// Op names the operation, Err is the cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with kind and op. A nil err yields nil.
func NewError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validation, Network, Storage and Connection are shorthands for NewError.
func Validation(op string, err error) error { return NewError(KindValidation, op, err) }
func Network(op string, err error) error    { return NewError(KindNetwork, op, err) }
func Storage(op string, err error) error    { return NewError(KindStorage, op, err) }
func Connection(op string, err error) error { return NewError(KindConnection, op, err) }

// KindOf returns the kind of the outermost tagged error in err's chain,
// or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
