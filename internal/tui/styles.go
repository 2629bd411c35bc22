package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Divider   lipgloss.Style

	// Header styles
	Title lipgloss.Style
	URL   lipgloss.Style

	// Status styles
	Compiling lipgloss.Style
	Failed    lipgloss.Style
	Warned    lipgloss.Style
	Ready     lipgloss.Style

	// Body styles
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style

	// Footer style
	Footer lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	URL: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	Compiling: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Failed: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196")),

	Warned: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")),

	Ready: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	ErrorText: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	WarningText: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),
}
