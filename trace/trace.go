// Package trace prints a recorded bracket scan as a table in the terminal.
package trace

import (
	"fmt"
	"strings"

	"github.com/amirrezaask/stackviz/brackets"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	// Plain disables all styling.
	Plain bool
}

type styles struct {
	plain    bool
	header   lipgloss.Style
	cursor   lipgloss.Style
	partner  lipgloss.Style
	push     lipgloss.Style
	pop      lipgloss.Style
	mismatch lipgloss.Style
	muted    lipgloss.Style
	ok       lipgloss.Style
	fail     lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{plain: true, header: s, cursor: s, partner: s, push: s, pop: s, mismatch: s, muted: s, ok: s, fail: s}
	}
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2d415a")),
		cursor:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#ffeb3b")).Foreground(lipgloss.Color("#000000")),
		partner:  lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#fbc02d")),
		push:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")),
		pop:      lipgloss.NewStyle().Foreground(lipgloss.Color("#2196f3")),
		mismatch: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f44336")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#607d8b")),
		ok:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4caf50")),
		fail:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f44336")),
	}
}

// Render returns one row per step followed by the verdict.
func Render(expression string, r brackets.Result, opts Options) string {
	st := newStyles(opts.Plain)
	var sb strings.Builder

	sb.WriteString(st.header.Render("expression: " + expression))
	sb.WriteByte('\n')

	width := 5
	for _, s := range r.Steps {
		if len(s.Snapshot) > width {
			width = len(s.Snapshot)
		}
	}

	sb.WriteString(st.muted.Render(fmt.Sprintf("%4s  %4s  %-*s  %s", "step", "pos", width, "stack", "action")))
	sb.WriteByte('\n')
	for i, s := range r.Steps {
		sb.WriteString(fmt.Sprintf("%4d  %4d  %-*s  %s", i+1, s.Cursor, width, string(s.Snapshot), actionStyle(st, s.Action).Render(s.Action)))
		sb.WriteString("  ")
		sb.WriteString(highlight(st, expression, s))
		sb.WriteByte('\n')
	}

	if r.Balanced {
		sb.WriteString(st.ok.Render("balanced"))
	} else {
		sb.WriteString(st.fail.Render("not balanced"))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func actionStyle(st styles, action string) lipgloss.Style {
	switch {
	case strings.HasPrefix(action, "push"):
		return st.push
	case strings.HasPrefix(action, "pop"):
		return st.pop
	case strings.HasPrefix(action, "mismatch"):
		return st.mismatch
	default:
		return st.muted
	}
}

// highlight renders expression with the step's character marked, and for a
// pop the opener it closed. In plain mode the character is shown as >c<.
func highlight(st styles, expression string, s brackets.Step) string {
	rs := []rune(expression)
	cursor := s.Cursor
	if cursor < 0 || cursor >= len(rs) {
		return expression
	}
	partner := -1
	if strings.HasPrefix(s.Action, "pop") {
		partner = brackets.FindMatching(rs, cursor)
	}

	var sb strings.Builder
	for i, r := range rs {
		c := string(r)
		switch {
		case i == cursor && st.plain:
			sb.WriteString(">" + c + "<")
		case i == cursor:
			sb.WriteString(st.cursor.Render(c))
		case i == partner:
			sb.WriteString(st.partner.Render(c))
		default:
			sb.WriteString(c)
		}
	}
	return sb.String()
}
