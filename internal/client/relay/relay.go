package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/dmitrijs2005/quickchat/internal/logging"
	"github.com/google/uuid"
)

// Envelope is one frame on the wire.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Handler receives inbound events. It runs on the Conn's reader goroutine.
type Handler func(event string, data json.RawMessage)

type Dialer struct {
	url     string
	timeout time.Duration
	log     logging.Logger
}

func NewDialer(url string, timeout time.Duration, log logging.Logger) *Dialer {
	return &Dialer{url: url, timeout: timeout, log: log}
}

// Dial opens a connection and starts its reader. A non-empty token is sent
// as a bearer Authorization header on the upgrade request.
func (d *Dialer) Dial(ctx context.Context, token string, h Handler) (*Conn, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	header := http.Header{}
	if token != "" {
		header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	ws, _, err := websocket.Dial(ctx, d.url, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return nil, common.Connection("dial", fmt.Errorf("dial %s: %w", d.url, err))
	}

	readCtx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		id:     uuid.NewString(),
		ws:     ws,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	c.log = d.log.With("conn", c.id)
	c.log.Debug(ctx, "relay connected", "url", d.url)

	go c.readLoop(readCtx, h)

	return c, nil
}

type Conn struct {
	id  string
	ws  *websocket.Conn
	log logging.Logger

	cancel context.CancelFunc
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error

	// set by the reader before done is closed
	closeFrame bool
}

// Done is closed when the reader has stopped.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Emit writes one event frame.
func (c *Conn) Emit(ctx context.Context, event string, payload any) error {
	select {
	case <-c.done:
		return common.Connection("emit", common.ErrNotConnected)
	default:
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return common.Connection("emit", fmt.Errorf("encode %s payload: %w", event, err))
	}

	if err := wsjson.Write(ctx, c.ws, Envelope{Event: event, Data: data}); err != nil {
		return common.Connection("emit", err)
	}
	return nil
}

// Close sends a normal closure to the relay, stops the reader and waits
// for it to exit. It is safe to call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		// the handshake completes through the running reader
		err := c.ws.Close(websocket.StatusNormalClosure, "")
		c.cancel()
		<-c.done

		// after the relay's close frame the handshake may end in EOF
		if err != nil && !c.closeFrame && !isClosed(err) {
			_ = c.ws.CloseNow()
			c.closeErr = common.Connection("close", err)
		}
		c.log.Debug(context.Background(), "relay closed")
	})
	return c.closeErr
}

func (c *Conn) readLoop(ctx context.Context, h Handler) {
	defer close(c.done)

	for {
		typ, b, err := c.ws.Read(ctx)
		if err != nil {
			c.closeFrame = websocket.CloseStatus(err) != -1
			if ctx.Err() != nil || isClosed(err) {
				c.log.Debug(ctx, "relay reader stopped", "reason", err)
			} else {
				c.log.Error(ctx, "relay connection error", "error", err)
			}
			return
		}

		if typ != websocket.MessageText {
			c.log.Warn(ctx, "skipping non-text relay frame")
			continue
		}

		var env Envelope
		if err := json.Unmarshal(b, &env); err != nil {
			c.log.Warn(ctx, "skipping malformed relay frame", "error", err)
			continue
		}
		if env.Event == "" {
			c.log.Warn(ctx, "skipping relay frame without event")
			continue
		}
		h(env.Event, env.Data)
	}
}

func isClosed(err error) bool {
	return websocket.CloseStatus(err) != -1 || errors.Is(err, net.ErrClosed)
}
