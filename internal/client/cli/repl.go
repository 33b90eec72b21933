package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"unicode"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	println(args ...any)
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Send(ctx context.Context, text string) error
	History(ctx context.Context) error
	Sessions(ctx context.Context) error
	NewSession(ctx context.Context, name string) error
	UseSession(ctx context.Context, name string) error
	ToggleTheme(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, register, theme, exit"
	helpLoggedIn  = "Available commands: (s)end <text>, (h)istory, sessions|ls, new <name>, use <name>, theme, whoami, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the quickchat CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The rest of the line is the argument.
// Unknown commands are reported back to the user. The loop exits on EOF,
// on context cancellation, or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - login          - authenticate
//	  - register       - create an account
//	  - theme          - toggle dark mode
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - send | s TEXT  - post a message to the active session
//	  - history | h    - print the active session's log
//	  - sessions | ls  - list sessions
//	  - new NAME       - create a session and switch to it
//	  - use NAME       - switch to a session
//	  - theme          - toggle dark mode
//	  - whoami         - show user, session and token expiry
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// and log their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.println(fmt.Sprintf("qc %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		cmd, arg := splitCommand(line)
		if cmd == "" {
			continue
		}
		if cmd != "send" && cmd != "s" {
			arg = strings.TrimSpace(arg)
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				a.println(helpLoggedIn)
			} else {
				a.println(helpLoggedOut)
			}
			continue
		case "theme":
			_ = a.ToggleTheme(ctx)
			continue
		case "exit", "quit":
			a.println("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			case "register":
				_ = a.Register(ctx)
			case "send", "s", "history", "h", "sessions", "ls", "new", "use", "whoami", "logout":
				a.println("Please login first.")
			default:
				a.println("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "send", "s":
			_ = a.Send(ctx, arg)
		case "history", "h":
			_ = a.History(ctx)
		case "sessions", "ls":
			_ = a.Sessions(ctx)
		case "new":
			if arg == "" {
				a.println("Usage: new <name>")
				continue
			}
			_ = a.NewSession(ctx, arg)
		case "use":
			if arg == "" {
				a.println("Usage: use <name>")
				continue
			}
			_ = a.UseSession(ctx, arg)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "login", "register":
			a.println("Already logged in. Use 'logout' first.")
		default:
			a.println("Unknown command:", cmd)
		}
	}
}

// splitCommand returns the first word of line and everything after the
// whitespace that follows it, trailing spaces included.
func splitCommand(line string) (string, string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}
