// Package storage is the client's durability boundary.
//
// All client state (user, token, theme, session registry, message logs)
// lives as JSON documents in a single SQLite key/value table created by
// embedded goose migrations. Repository exposes the raw table; Adapter is
// what the rest of the client uses: JSON in, JSON out, errors logged and
// swallowed.
package storage
