package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/juniarta/devpulse/internal/status"
)

// model is the bubbletea model for the status display.
type model struct {
	// Snapshot source
	snapshots <-chan status.OutputState

	// State
	current      status.OutputState
	haveSnapshot bool

	// UI state
	spinner spinner.Model
	width   int
	height  int

	// Callbacks
	onQuit func()
}

// snapshotMsg wraps an output-state snapshot for the bubbletea message system.
type snapshotMsg status.OutputState

// newModel creates a new model with the given configuration.
func newModel(snapshots <-chan status.OutputState, onQuit func()) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		snapshots: snapshots,
		spinner:   sp,
		onQuit:    onQuit,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.snapshots),
		m.spinner.Tick,
		tea.EnterAltScreen,
	)
}

// Update is implemented in update.go, View in view.go.
