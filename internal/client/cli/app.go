package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/quickchat/internal/client/client"
	"github.com/dmitrijs2005/quickchat/internal/client/config"
	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/client/relay"
	"github.com/dmitrijs2005/quickchat/internal/client/render"
	"github.com/dmitrijs2005/quickchat/internal/client/services"
	"github.com/dmitrijs2005/quickchat/internal/client/storage"
	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/dmitrijs2005/quickchat/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	store       services.Store
	authService services.AuthService
	user        *services.UserState
	theme       *services.ThemeState
	sessions    *services.SessionRegistry
	chat        *services.ChatSession

	render *render.Renderer
	reader *bufio.Reader
	out    *syncWriter
}

// syncWriter serializes writes from the REPL and the relay reader.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := storage.NewAdapter(db, log.With("component", "storage"))
	apiClient := client.NewHTTPClient(c.AuthEndpointURL, c.RequestTimeout)
	dialer := relay.NewDialer(c.RelayEndpointURL, c.RequestTimeout, log.With("component", "relay"))

	a := newApp(ctx, c, log, store, services.NewAuthService(apiClient), services.RelayDialer(dialer), os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

// newApp assembles an App from its collaborators.
func newApp(ctx context.Context, c *config.Config, log logging.Logger, store services.Store, auth services.AuthService, dial services.DialFunc, in io.Reader, out io.Writer) *App {
	user := services.NewUserState(store)
	w := &syncWriter{w: out}

	a := &App{
		config:      c,
		log:         log,
		store:       store,
		authService: auth,
		user:        user,
		theme:       services.NewThemeState(ctx, store),
		sessions:    services.NewSessionRegistry(ctx, store),
		chat: services.NewChatSession(dial, store, user, log.With("component", "chat"),
			services.WithTimeFormat(c.TimeFormat)),
		render: render.New(w),
		reader: bufio.NewReader(in),
		out:    w,
	}
	a.chat.OnMessage(a.printMessage)
	return a
}

// Run restores the previous user, if any, and serves the REPL until the
// user exits. The chat connection and the database are closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	a.println(a.render.Title("Welcome to quickchat (type 'help' for commands)", a.theme.IsDark()))
	a.restore(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close(ctx context.Context) {
	a.chat.Close(ctx)
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.user.Authenticated()
}

// restore re-enters chat mode for a user persisted by an earlier run.
func (a *App) restore(ctx context.Context) {
	if !a.user.Restore(ctx) {
		return
	}
	a.log.Info(ctx, "restored session", "user", a.user.Username())
	a.println(fmt.Sprintf("Welcome back, %s!", a.user.Username()))
	a.enterChat(ctx)
}

// enterChat activates the last used session, or the default one.
func (a *App) enterChat(ctx context.Context) {
	name, ok := a.sessions.LastSession(ctx)
	if !ok {
		name = common.DefaultSession
	}
	if err := a.activate(ctx, name); err != nil {
		a.log.Error(ctx, "error activating session", "session", name, "error", err)
		return
	}
	a.printHistory()
}

// activate registers name if it is unknown, makes it current and opens
// its chat session.
func (a *App) activate(ctx context.Context, name string) error {
	if _, err := a.sessions.CreateSession(ctx, name); err != nil {
		return err
	}
	a.sessions.LoadSession(name)
	a.sessions.RememberSession(ctx, name)
	return a.chat.Activate(ctx, name)
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.user.Username()
	if cur := a.sessions.Current(); cur != "" {
		s += "@" + cur
		if !a.chat.Connected() {
			s += " offline"
		}
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printMessage(m models.Message) {
	a.println(a.render.Message(m, a.user.Username(), a.theme.IsDark()))
}

func (a *App) printHistory() {
	dark := a.theme.IsDark()
	if a.chat.Name() == "" {
		a.println(a.render.NoSession(dark))
		return
	}
	a.println(a.render.Title("# "+a.chat.Name(), dark))
	a.println(a.render.Log(a.chat.Messages(), a.user.Username(), dark))
}

func (a *App) printError(msg string) {
	a.println(a.render.Error(msg, a.theme.IsDark()))
}
