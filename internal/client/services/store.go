package services

import "context"

// Store is the persistence surface used by services. storage.Adapter
// implements it; failures are handled inside the Store and never reach
// the caller.
type Store interface {
	Save(ctx context.Context, key string, value any)
	Load(ctx context.Context, key string, dst any) bool
	Remove(ctx context.Context, key string)
	RemoveAll(ctx context.Context, keys ...string)
}
