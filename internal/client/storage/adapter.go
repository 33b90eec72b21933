package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"reflect"

	"github.com/dmitrijs2005/quickchat/internal/dbx"
	"github.com/dmitrijs2005/quickchat/internal/logging"
)

// Adapter stores JSON-serializable values by string key. It never hands
// failures to the caller: a failed Save is a lost write, a failed Load is
// "no prior value", and both are logged.
type Adapter struct {
	repo Repository
	db   *sql.DB
	log  logging.Logger
}

// NewAdapter binds an Adapter to db.
func NewAdapter(db *sql.DB, log logging.Logger) *Adapter {
	return &Adapter{repo: NewSQLiteRepository(db), db: db, log: log}
}

// Save serializes value and stores it under key.
func (a *Adapter) Save(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		a.log.Error(ctx, "error encoding value for storage", "key", key, "error", err)
		return
	}
	if err := a.repo.Set(ctx, key, b); err != nil {
		a.log.Error(ctx, "error saving to storage", "key", key, "error", err)
	}
}

// Load decodes the value stored under key into dst and reports whether it
// did. Missing keys, unparsable content and read failures all return false
// and leave dst untouched. dst must be a non-nil pointer.
func (a *Adapter) Load(ctx context.Context, key string, dst any) bool {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		a.log.Error(ctx, "error decoding stored value", "key", key, "error", "destination is not a pointer")
		return false
	}

	b, err := a.repo.Get(ctx, key)
	if err != nil {
		a.log.Error(ctx, "error getting from storage", "key", key, "error", err)
		return false
	}
	if b == nil {
		return false
	}
	// json.Unmarshal fills its target partially before a type error, so
	// decode into a fresh value and copy only on success
	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(b, fresh.Interface()); err != nil {
		a.log.Error(ctx, "error decoding stored value", "key", key, "error", err)
		return false
	}
	rv.Elem().Set(fresh.Elem())
	return true
}

// Remove deletes key.
func (a *Adapter) Remove(ctx context.Context, key string) {
	if err := a.repo.Delete(ctx, key); err != nil {
		a.log.Error(ctx, "error removing from storage", "key", key, "error", err)
	}
}

// RemoveAll deletes keys together: either all of them are gone afterwards
// or, on failure, none.
func (a *Adapter) RemoveAll(ctx context.Context, keys ...string) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for _, key := range keys {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		a.log.Error(ctx, "error removing from storage", "keys", keys, "error", err)
	}
}
