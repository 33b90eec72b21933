package services

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/client/relay"
	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/dmitrijs2005/quickchat/internal/logging"
)

// Connection is one live relay connection.
type Connection interface {
	Emit(ctx context.Context, event string, payload any) error
	Close() error
}

// DialFunc opens a relay connection delivering inbound events to h.
type DialFunc func(ctx context.Context, token string, h relay.Handler) (Connection, error)

// RelayDialer adapts a relay.Dialer to DialFunc.
func RelayDialer(d *relay.Dialer) DialFunc {
	return func(ctx context.Context, token string, h relay.Handler) (Connection, error) {
		c, err := d.Dial(ctx, token, h)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// ChatSession owns the message log of the active session and the one
// relay connection opened for it.
//
// Inbound events and sends both append under mu; activation and close are
// serialized by activeMu, which is never held together with mu while a
// connection is being closed. Each activation gets a new generation and
// events tagged with an older one are dropped.
type ChatSession struct {
	dial       DialFunc
	store      Store
	user       *UserState
	log        logging.Logger
	timeFormat string
	now        func() time.Time

	activeMu sync.Mutex

	mu        sync.Mutex
	name      string
	messages  []models.Message
	conn      Connection
	gen       uint64
	onMessage func(models.Message)
}

// DefaultTimeFormat renders timestamps as a local time of day.
const DefaultTimeFormat = "3:04:05 PM"

type ChatOption func(*ChatSession)

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) ChatOption {
	return func(c *ChatSession) { c.now = now }
}

// WithTimeFormat sets the time-of-day layout used for timestamps.
func WithTimeFormat(layout string) ChatOption {
	return func(c *ChatSession) {
		if layout != "" {
			c.timeFormat = layout
		}
	}
}

func NewChatSession(dial DialFunc, store Store, user *UserState, log logging.Logger, opts ...ChatOption) *ChatSession {
	c := &ChatSession{
		dial:       dial,
		store:      store,
		user:       user,
		log:        log,
		timeFormat: DefaultTimeFormat,
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// OnMessage registers fn to be called, outside any lock, after an inbound
// message has been appended. Only one callback is kept.
func (c *ChatSession) OnMessage(fn func(models.Message)) {
	c.mu.Lock()
	c.onMessage = fn
	c.mu.Unlock()
}

// Activate makes name the active session: the previous connection is
// closed and drained, name's log is loaded and one new connection is
// dialed. A failed dial is logged; the session stays active without a
// connection.
func (c *ChatSession) Activate(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return common.Validation("activate", common.ErrRequiredField)
	}

	c.activeMu.Lock()
	defer c.activeMu.Unlock()

	c.release(ctx)

	var msgs []models.Message
	c.store.Load(ctx, common.ChatMessagesKey(name), &msgs)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.name = name
	c.messages = msgs
	c.mu.Unlock()

	conn, err := c.dial(ctx, c.user.Token(), c.handler(gen, name))
	if err != nil {
		c.log.Error(ctx, "relay connection error", "session", name, "error", err)
		return nil
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.log.Debug(ctx, "session activated", "session", name, "messages", len(msgs))
	return nil
}

// Close tears the active session down. It is safe to call at any time.
func (c *ChatSession) Close(ctx context.Context) {
	c.activeMu.Lock()
	defer c.activeMu.Unlock()

	c.release(ctx)

	c.mu.Lock()
	c.name = ""
	c.messages = nil
	c.mu.Unlock()
}

// release detaches and closes the current connection. The close happens
// outside mu so a reader blocked on mu can finish.
func (c *ChatSession) release(ctx context.Context) {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.gen++
	c.mu.Unlock()

	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		c.log.Warn(ctx, "error closing relay connection", "error", err)
	}
}

// Send appends text as an own message, persists the log and emits it to
// the relay. Delivery is best effort: emit failures are logged and the
// message stays in the log.
func (c *ChatSession) Send(ctx context.Context, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, common.Validation("send", common.ErrEmptyMessage)
	}

	c.mu.Lock()
	if c.name == "" {
		c.mu.Unlock()
		return models.Message{}, common.Validation("send", common.ErrNoSession)
	}

	m := models.Message{
		Text:      text,
		Sender:    c.user.Username(),
		Timestamp: c.now().Format(c.timeFormat),
	}
	c.messages = append(c.messages, m)
	c.store.Save(ctx, common.ChatMessagesKey(c.name), c.messages)
	name := c.name
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.log.Warn(ctx, "message not delivered, relay not connected", "session", name)
		return m, nil
	}
	if err := conn.Emit(ctx, common.EventUserMsg, m); err != nil {
		c.log.Error(ctx, "relay emit error", "session", name, "error", err)
	}
	return m, nil
}

func (c *ChatSession) handler(gen uint64, name string) relay.Handler {
	return func(event string, data json.RawMessage) {
		ctx := context.Background()

		if event != common.EventMessage {
			c.log.Debug(ctx, "ignoring relay event", "event", event)
			return
		}

		var m models.Message
		if err := json.Unmarshal(data, &m); err != nil {
			c.log.Warn(ctx, "malformed inbound message", "session", name, "error", err)
			return
		}
		m.Sender = common.ServerSender

		c.mu.Lock()
		if c.gen != gen {
			c.mu.Unlock()
			c.log.Debug(ctx, "dropping message from replaced connection", "session", name)
			return
		}
		c.messages = append(c.messages, m)
		c.store.Save(ctx, common.ChatMessagesKey(name), c.messages)
		fn := c.onMessage
		c.mu.Unlock()

		if fn != nil {
			fn(m)
		}
	}
}

// Name is the active session, or "".
func (c *ChatSession) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Messages returns a copy of the active log.
func (c *ChatSession) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *ChatSession) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}
