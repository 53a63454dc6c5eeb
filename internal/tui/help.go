package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"projectpad/internal/docs"
)

var (
	helpOnce     sync.Once
	helpRendered string
)

func (m *appModel) viewHelp() string {
	helpOnce.Do(func() {
		md, ok := docs.Get("keys")
		if !ok {
			md = "# projectpad\n\nNo help available."
		}
		// Fixed style instead of WithAutoStyle: auto style can block on
		// terminal capability queries in some setups.
		style := "notty"
		if lipgloss.HasDarkBackground() {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(60),
		)
		if err != nil {
			helpRendered = md
			return
		}
		out, err := r.Render(md)
		if err != nil {
			helpRendered = md
			return
		}
		helpRendered = strings.TrimRight(out, "\n")
	})
	body := helpRendered + "\n\n" + styleMuted().Render("any key: close")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
