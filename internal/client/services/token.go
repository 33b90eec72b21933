package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no expiry")

// TokenInfo is what the client can tell about a bearer token without
// the backend's signing key.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token expiry lies before now. A token
// without expiry never expires.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// InspectToken decodes a JWT without verifying its signature. The result
// is informational only.
func InspectToken(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse token: %w", err)
	}

	var info TokenInfo
	if v, ok := claims["id"]; ok {
		info.Subject = fmt.Sprint(v)
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return info, fmt.Errorf("parse token: %w", err)
	}
	if exp == nil {
		return info, ErrNoExpiry
	}
	info.ExpiresAt = exp.Time
	return info, nil
}
