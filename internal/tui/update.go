package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juniarta/devpulse/internal/status"
)

// channelClosedMsg signals that the snapshot channel was closed.
type channelClosedMsg struct{}

// waitForSnapshot creates a command that waits for the next snapshot.
// Returns channelClosedMsg if the channel is closed.
func waitForSnapshot(ch <-chan status.OutputState) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		// Each snapshot is a full replacement of the displayed state.
		m.current = status.OutputState(msg)
		m.haveSnapshot = true
		return m, waitForSnapshot(m.snapshots)

	case channelClosedMsg:
		slog.Info("snapshot channel closed, exiting TUI")
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit
	}
	return m, nil
}
