// Package tui provides a terminal UI for the build status using bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juniarta/devpulse/internal/status"
)

// TUI is the terminal renderer for output-state snapshots.
type TUI struct {
	snapshots <-chan status.OutputState
	onQuit    func()
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI reading snapshots from the given channel.
func New(snapshots <-chan status.OutputState, opts ...Option) *TUI {
	t := &TUI{snapshots: snapshots}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// Run starts the TUI and blocks until it exits.
func (t *TUI) Run() error {
	m := newModel(t.snapshots, t.onQuit)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
