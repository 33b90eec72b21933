// Package render turns chat messages into terminal output styled with
// lipgloss. Own messages are right-aligned in an accent bubble, other
// senders get their name above a neutral bubble, and relay messages
// (sender "Server") carry no name label.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/common"
)

const (
	defaultWidth = 72
	bubbleWidth  = 40

	ownLabel     = "You"
	emptyLog     = "No messages yet. Start chatting!"
	noSessionMsg = "No active chat session found. Use 'new <name>' to create one."
)

type palette struct {
	own    lipgloss.Style
	other  lipgloss.Style
	name   lipgloss.Style
	stamp  lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	errorS lipgloss.Style
}

func newPalette(r *lipgloss.Renderer, dark bool) palette {
	bubble := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(bubbleWidth)

	if dark {
		return palette{
			own:    bubble.BorderForeground(lipgloss.Color("#1E40AF")).Foreground(lipgloss.Color("#FFFFFF")),
			other:  bubble.BorderForeground(lipgloss.Color("#374151")).Foreground(lipgloss.Color("#E5E7EB")),
			name:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#9CA3AF")),
			stamp:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
			muted:  r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
			accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA")),
			errorS: r.NewStyle().Foreground(lipgloss.Color("#F87171")),
		}
	}
	return palette{
		own:    bubble.BorderForeground(lipgloss.Color("#3B82F6")).Foreground(lipgloss.Color("#1E3A8A")),
		other:  bubble.BorderForeground(lipgloss.Color("#D1D5DB")).Foreground(lipgloss.Color("#111827")),
		name:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4B5563")),
		stamp:  r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		errorS: r.NewStyle().Foreground(lipgloss.Color("#DC2626")),
	}
}

// Renderer styles output for one writer. Color support is detected from
// the writer, so output to a pipe or buffer is plain text.
type Renderer struct {
	r     *lipgloss.Renderer
	width int
	dark  palette
	light palette
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		r:     r,
		width: defaultWidth,
		dark:  newPalette(r, true),
		light: newPalette(r, false),
	}
}

func (r *Renderer) palette(dark bool) palette {
	if dark {
		return r.dark
	}
	return r.light
}

// Message renders one message as seen by username.
func (r *Renderer) Message(m models.Message, username string, dark bool) string {
	p := r.palette(dark)
	own := m.IsOwn(username)

	label := m.Sender
	if own {
		label = ownLabel
	}
	header := p.name.Render(label)
	if m.Timestamp != "" {
		header += "  " + p.stamp.Render(m.Timestamp)
	}

	style := p.other
	if own {
		style = p.own
	}
	bubble := style.Render(header + "\n" + m.Text)

	if own {
		return lipgloss.PlaceHorizontal(r.width, lipgloss.Right, bubble)
	}
	if m.Sender != common.ServerSender {
		return p.name.Render(m.Sender) + "\n" + bubble
	}
	return bubble
}

// Log renders a whole message log in order.
func (r *Renderer) Log(msgs []models.Message, username string, dark bool) string {
	if len(msgs) == 0 {
		return r.palette(dark).muted.Render(emptyLog)
	}
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, r.Message(m, username, dark))
	}
	return strings.Join(parts, "\n")
}

// NoSession is shown when no session is active.
func (r *Renderer) NoSession(dark bool) string {
	return r.palette(dark).muted.Render(noSessionMsg)
}

// Sessions renders the session list with the current one marked.
func (r *Renderer) Sessions(names []string, current string, dark bool) string {
	p := r.palette(dark)
	if len(names) == 0 {
		return p.muted.Render("No sessions yet.")
	}
	lines := make([]string, 0, len(names))
	for _, n := range names {
		if n == current {
			lines = append(lines, p.accent.Render("* "+n))
			continue
		}
		lines = append(lines, "  "+n)
	}
	return strings.Join(lines, "\n")
}

// Title renders a heading line.
func (r *Renderer) Title(s string, dark bool) string {
	return r.palette(dark).accent.Render(s)
}

// Error renders a user-facing failure message.
func (r *Renderer) Error(s string, dark bool) string {
	return r.palette(dark).errorS.Render(s)
}
