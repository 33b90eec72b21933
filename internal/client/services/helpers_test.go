package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/client/relay"
	"github.com/dmitrijs2005/quickchat/internal/client/storage"
	"github.com/dmitrijs2005/quickchat/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "quickchat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T) *storage.Adapter {
	t.Helper()
	return storage.NewAdapter(setupDB(t), logging.Discard())
}

// rawValue returns the stored JSON under key decoded into a generic value.
func rawValue(t *testing.T, s Store, key string) any {
	t.Helper()
	var v any
	if !s.Load(context.Background(), key, &v) {
		return nil
	}
	return v
}

// ---- fake auth client ----

type fakeClient struct {
	LoginRet    *models.AuthResult
	LoginErr    error
	RegisterRet *models.AuthResult
	RegisterErr error

	LoginCalls    int
	RegisterCalls int

	LastIdentifier string
	LastUsername   string
	LastEmail      string
	LastPassword   string
}

func (f *fakeClient) Login(_ context.Context, identifier, password string) (*models.AuthResult, error) {
	f.LoginCalls++
	f.LastIdentifier = identifier
	f.LastPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, username, email, password string) (*models.AuthResult, error) {
	f.RegisterCalls++
	f.LastUsername = username
	f.LastEmail = email
	f.LastPassword = password
	return f.RegisterRet, f.RegisterErr
}

// ---- fake relay ----

type emitted struct {
	event   string
	payload any
}

type fakeConn struct {
	mu      sync.Mutex
	h       relay.Handler
	token   string
	emitted []emitted
	closed  bool
	emitErr error
}

func (c *fakeConn) Emit(_ context.Context, event string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emitted = append(c.emitted, emitted{event: event, payload: payload})
	return c.emitErr
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeConn) push(t *testing.T, event string, payload any) {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	c.h(event, b)
}

type fakeDialer struct {
	mu    sync.Mutex
	conns []*fakeConn
	err   error

	// openAtDial counts connections still open when a new one was dialed.
	openAtDial int
}

func (d *fakeDialer) dial(_ context.Context, token string, h relay.Handler) (Connection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.conns {
		if !c.isClosed() {
			d.openAtDial++
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	c := &fakeConn{h: h, token: token}
	d.conns = append(d.conns, c)
	return c, nil
}

func (d *fakeDialer) last() *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.conns) == 0 {
		return nil
	}
	return d.conns[len(d.conns)-1]
}
