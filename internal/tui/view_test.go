package tui

import (
	"strings"
	"testing"

	"github.com/juniarta/devpulse/internal/status"
)

func sizedModel(w, h int) model {
	m := testModel()
	m.width = w
	m.height = h
	return m
}

func TestView_ZeroSize(t *testing.T) {
	m := testModel()

	if got := m.View(); got != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", got)
	}
}

func TestView_TerminalTooSmall(t *testing.T) {
	m := sizedModel(20, 5)

	if got := m.View(); !strings.Contains(got, "Terminal too small") {
		t.Errorf("expected resize hint, got %q", got)
	}
}

func TestView_BeforeFirstSnapshot(t *testing.T) {
	m := sizedModel(80, 24)

	if got := m.View(); !strings.Contains(got, "starting development server") {
		t.Errorf("expected startup message, got %q", got)
	}
}

func TestView_BootstrappingSnapshot(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{Bootstrapping: true}

	got := m.View()
	if !strings.Contains(got, "starting development server") {
		t.Errorf("expected startup message for bootstrap snapshot, got %q", got)
	}
	if strings.Contains(got, "Compiled successfully.") {
		t.Errorf("bootstrap snapshot must not claim success, got %q", got)
	}
}

func TestView_Loading(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{Loading: true}

	if got := m.View(); !strings.Contains(got, "compiling...") {
		t.Errorf("expected compiling message, got %q", got)
	}
}

func TestView_Errors(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{Errors: []string{"syntax error in index"}}

	got := m.View()
	if !strings.Contains(got, "Failed to compile.") {
		t.Errorf("expected failure headline, got %q", got)
	}
	if !strings.Contains(got, "syntax error in index") {
		t.Errorf("expected error text, got %q", got)
	}
}

func TestView_Warnings(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{Warnings: []string{"unused variable"}}

	got := m.View()
	if !strings.Contains(got, "Compiled with warnings.") {
		t.Errorf("expected warnings headline, got %q", got)
	}
	if !strings.Contains(got, "unused variable") {
		t.Errorf("expected warning text, got %q", got)
	}
}

func TestView_ErrorsTakePrecedenceOverWarnings(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{
		Errors:   []string{"boom"},
		Warnings: []string{"hmm"},
	}

	got := m.View()
	if !strings.Contains(got, "Failed to compile.") {
		t.Errorf("expected failure headline, got %q", got)
	}
	if strings.Contains(got, "Compiled with warnings.") {
		t.Errorf("did not expect warnings headline, got %q", got)
	}
}

func TestView_Clean(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{}

	if got := m.View(); !strings.Contains(got, "Compiled successfully.") {
		t.Errorf("expected success message, got %q", got)
	}
}

func TestView_HeaderShowsAppURL(t *testing.T) {
	m := sizedModel(80, 24)
	m.haveSnapshot = true
	m.current = status.OutputState{AppURL: "http://localhost:3000"}

	got := m.View()
	if !strings.Contains(got, "devpulse") {
		t.Errorf("expected title in header, got %q", got)
	}
	if !strings.Contains(got, "http://localhost:3000") {
		t.Errorf("expected app URL in header, got %q", got)
	}
}

func TestView_FooterShowsQuitHint(t *testing.T) {
	m := sizedModel(80, 24)

	if got := m.View(); !strings.Contains(got, "q quit") {
		t.Errorf("expected quit hint, got %q", got)
	}
}

func TestSafeWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{80, 80},
	}

	for _, tc := range tests {
		if got := safeWidth(tc.in); got != tc.want {
			t.Errorf("safeWidth(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
