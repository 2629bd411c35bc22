package tui

import (
	"testing"

	"github.com/juniarta/devpulse/internal/status"
)

func TestNew_AppliesOptions(t *testing.T) {
	snapshots := make(chan status.OutputState)
	quitCalled := false

	ui := New(snapshots, WithOnQuit(func() { quitCalled = true }))

	if ui.snapshots != (<-chan status.OutputState)(snapshots) {
		t.Error("snapshots channel not set")
	}
	if ui.onQuit == nil {
		t.Fatal("onQuit not set")
	}

	ui.onQuit()
	if !quitCalled {
		t.Error("onQuit callback not invoked")
	}
}

func TestNew_DefaultsWithoutOptions(t *testing.T) {
	snapshots := make(chan status.OutputState)

	ui := New(snapshots)

	if ui.onQuit != nil {
		t.Error("expected nil onQuit by default")
	}
}
