// Package models defines client-side data models used by the quickchat CLI.
package models

import (
	"encoding/json"
	"fmt"
)

// User is the account record returned by the auth backend. Only Username and
// Email are interpreted; every other field is kept in Profile untouched so the
// record round-trips through storage as the backend sent it.
type User struct {
	Username string
	Email    string
	Profile  map[string]json.RawMessage
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Profile)+2)
	for k, v := range u.Profile {
		m[k] = v
	}
	m["username"] = u.Username
	m["email"] = u.Email
	return json.Marshal(m)
}

func (u *User) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}

	*u = User{}
	if err := takeString(m, "username", &u.Username); err != nil {
		return err
	}
	if err := takeString(m, "email", &u.Email); err != nil {
		return err
	}
	if len(m) > 0 {
		u.Profile = m
	}
	return nil
}

func takeString(m map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	delete(m, key)
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("user.%s: %w", key, err)
	}
	return nil
}

// AuthResult is the body of a successful login or registration.
type AuthResult struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}
