// Package render prints output-state snapshots as plain text for non-TTY
// use (piped output, CI logs).
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/juniarta/devpulse/internal/status"
)

var consoleStyles = struct {
	Compiling lipgloss.Style
	Failed    lipgloss.Style
	Warned    lipgloss.Style
	Ready     lipgloss.Style
	URL       lipgloss.Style
}{
	Compiling: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Failed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	Warned:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	Ready:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	URL:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
}

// Console renders each snapshot as one status block. Every snapshot fully
// replaces the previous one conceptually; Console just appends blocks since
// a plain stream cannot repaint.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Render prints one output-state snapshot. Safe for use as a store
// subscriber.
func (c *Console) Render(st status.OutputState) {
	if st.Bootstrapping {
		// Nothing has compiled yet; there is no status worth printing.
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder

	switch {
	case st.Loading:
		sb.WriteString(consoleStyles.Compiling.Render("compiling..."))
		sb.WriteString("\n")

	case len(st.Errors) > 0:
		sb.WriteString(consoleStyles.Failed.Render("Failed to compile."))
		sb.WriteString("\n\n")
		for _, e := range st.Errors {
			sb.WriteString(e)
			sb.WriteString("\n")
		}

	case len(st.Warnings) > 0:
		sb.WriteString(consoleStyles.Warned.Render("Compiled with warnings."))
		sb.WriteString("\n\n")
		for _, w := range st.Warnings {
			sb.WriteString(w)
			sb.WriteString("\n")
		}

	default:
		sb.WriteString(consoleStyles.Ready.Render("Compiled successfully."))
		sb.WriteString("\n")
		if st.AppURL != "" {
			sb.WriteString(fmt.Sprintf("ready on %s\n", consoleStyles.URL.Render(st.AppURL)))
		}
	}

	_, _ = fmt.Fprint(c.w, sb.String())
}
