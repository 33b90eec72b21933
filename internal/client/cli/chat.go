package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/client/services"
	"github.com/dmitrijs2005/quickchat/internal/common"
)

const emptyMessageAlert = "Message cannot be empty!"

// Send posts text to the active session and echoes it.
func (a *App) Send(ctx context.Context, text string) error {
	m, err := a.chat.Send(ctx, text)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyMessage):
			a.printError(emptyMessageAlert)
		case errors.Is(err, common.ErrNoSession):
			a.println(a.render.NoSession(a.theme.IsDark()))
		default:
			a.printError(err.Error())
		}
		return err
	}
	a.printMessage(m)
	return nil
}

// History prints the active session's log.
func (a *App) History(ctx context.Context) error {
	a.printHistory()
	return nil
}

// Sessions lists known sessions, marking the current one.
func (a *App) Sessions(ctx context.Context) error {
	a.println(a.render.Sessions(a.sessions.Sessions(), a.sessions.Current(), a.theme.IsDark()))
	return nil
}

// NewSession creates name, records it as last used, gives it an empty
// persisted log if it did not exist, and switches to it.
func (a *App) NewSession(ctx context.Context, name string) error {
	created, err := a.sessions.CreateSession(ctx, name)
	if err != nil {
		a.printError(validationText(err))
		return err
	}
	a.sessions.LoadSession(name)
	a.sessions.RememberSession(ctx, name)
	if created {
		a.store.Save(ctx, common.ChatMessagesKey(name), []models.Message{})
	}

	if err := a.chat.Activate(ctx, name); err != nil {
		a.printError(validationText(err))
		return err
	}
	a.printHistory()
	return nil
}

// UseSession switches to name. Unknown names are registered first.
func (a *App) UseSession(ctx context.Context, name string) error {
	if err := a.activate(ctx, name); err != nil {
		a.printError(validationText(err))
		return err
	}
	a.printHistory()
	return nil
}

// ToggleTheme flips dark mode and persists it.
func (a *App) ToggleTheme(ctx context.Context) error {
	mode := "light"
	if a.theme.Toggle(ctx) {
		mode = "dark"
	}
	a.println(a.render.Title("Theme: "+mode, a.theme.IsDark()))
	return nil
}

// WhoAmI prints the signed-in user, the active session and the subject,
// issue time and expiry read from the token.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.user.User()
	if u == nil {
		a.println("Not logged in.")
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User:    %s\n", u.Username)
	if u.Email != "" {
		fmt.Fprintf(&b, "Email:   %s\n", u.Email)
	}

	session := a.chat.Name()
	if session == "" {
		session = "-"
	}
	state := "connected"
	if !a.chat.Connected() {
		state = "not connected"
	}
	fmt.Fprintf(&b, "Session: %s (%s)\n", session, state)

	info, err := services.InspectToken(a.user.Token())
	if err != nil && !errors.Is(err, services.ErrNoExpiry) {
		a.log.Debug(ctx, "token is not a readable JWT", "error", err)
		b.WriteString("Token:   opaque")
		a.println(b.String())
		return nil
	}

	if info.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", info.Subject)
	}
	if !info.IssuedAt.IsZero() {
		fmt.Fprintf(&b, "Issued:  %s\n", info.IssuedAt.Local().Format(time.RFC1123))
	}
	switch {
	case err != nil:
		b.WriteString("Token:   no expiry")
	case info.Expired(time.Now()):
		fmt.Fprintf(&b, "Token:   expired %s", info.ExpiresAt.Local().Format(time.RFC1123))
	default:
		fmt.Fprintf(&b, "Token:   expires %s", info.ExpiresAt.Local().Format(time.RFC1123))
	}

	a.println(b.String())
	return nil
}

// validationText is the user-facing text of a validation error.
func validationText(err error) string {
	var e *common.Error
	if errors.As(err, &e) {
		return e.Err.Error()
	}
	return err.Error()
}
