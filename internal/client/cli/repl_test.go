package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
	out   []string
}

func (f *fakeExec) println(a ...any) {
	f.out = append(f.out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

func (f *fakeExec) record(call, arg string) error {
	f.calls = append(f.calls, call)
	if arg != "" {
		f.args = append(f.args, arg)
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register", "")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}
func (f *fakeExec) Send(ctx context.Context, text string) error {
	f.calls = append(f.calls, "send")
	f.args = append(f.args, text)
	return nil
}
func (f *fakeExec) History(ctx context.Context) error  { return f.record("history", "") }
func (f *fakeExec) Sessions(ctx context.Context) error { return f.record("sessions", "") }
func (f *fakeExec) NewSession(ctx context.Context, name string) error {
	return f.record("new", name)
}
func (f *fakeExec) UseSession(ctx context.Context, name string) error {
	return f.record("use", name)
}
func (f *fakeExec) ToggleTheme(ctx context.Context) error { return f.record("theme", "") }
func (f *fakeExec) WhoAmI(ctx context.Context) error      { return f.record("whoami", "") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"send hello   world ",
		"s  second",
		"h",
		"ls",
		"new work",
		"use  old room",
		"whoami",
		"theme",
		"logout",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{"login", "send", "send", "history", "sessions", "new", "use", "whoami", "theme", "logout"}, exec.calls)
	assert.Equal(t, []string{"hello   world ", "second", "work", "old room"}, exec.args)
}

func TestRunREPL_ChatCommandsNeedLogin(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("send hi\nwhoami\nlogout\nfoobar\ntheme\n"))

	assert.Equal(t, []string{"theme"}, exec.calls)
	joined := strings.Join(exec.out, "\n")
	assert.Equal(t, 3, strings.Count(joined, "Please login first."))
	assert.Contains(t, joined, "Unknown command: foobar")
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("new\nuse   \nlogin\nquit\nsend never\n"))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(exec.out, "\n")
	assert.Contains(t, joined, "Usage: new <name>")
	assert.Contains(t, joined, "Usage: use <name>")
	assert.Contains(t, joined, "Already logged in.")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_EmptySendStillDispatched(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("send   \n"))

	assert.Equal(t, []string{"send"}, exec.calls)
	assert.Equal(t, []string{""}, exec.args)
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("login\n"))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_PromptAndHelpGoThroughExec(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(bob)" }, rdr("help\nexit\n"))

	assert.Equal(t, []string{"qc (bob)> ", helpLoggedOut, "qc (bob)> ", "Bye!"}, exec.out)
}

func TestRunREPL_NewAndUseTrimTheirName(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("new work  \nuse  play \n"))

	assert.Equal(t, []string{"work", "play"}, exec.args)
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line, cmd, arg string
	}{
		{"", "", ""},
		{"help", "help", ""},
		{"  send  hi there ", "send", "hi there "},
		{"s   hi  ", "s", "hi  "},
		{"use\twork", "use", "work"},
		{"theme   ", "theme", ""},
	}
	for _, tt := range tests {
		cmd, arg := splitCommand(tt.line)
		assert.Equal(t, tt.cmd, cmd, tt.line)
		assert.Equal(t, tt.arg, arg, tt.line)
	}
}
