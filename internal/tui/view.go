package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 40
	minHeight = 8
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return "Terminal too small. Please resize."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderDivider())
	sections = append(sections, m.renderBody())
	sections = append(sections, m.renderDivider())
	sections = append(sections, m.renderFooter())

	content := strings.Join(sections, "\n")

	rendered := styles.Container.
		Width(safeWidth(m.width - 2)).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, rendered)
}

// renderHeader shows the title and the application URL when known.
func (m model) renderHeader() string {
	header := styles.Title.Render("devpulse")
	if m.current.AppURL != "" {
		header += "  " + styles.URL.Render(m.current.AppURL)
	}
	return header
}

// renderBody shows the current build status.
func (m model) renderBody() string {
	if !m.haveSnapshot || m.current.Bootstrapping {
		// Nothing has compiled yet; there is no status worth showing.
		return m.spinner.View() + styles.Compiling.Render(" starting development server...")
	}

	st := m.current

	switch {
	case st.Loading:
		return m.spinner.View() + styles.Compiling.Render(" compiling...")

	case len(st.Errors) > 0:
		lines := []string{styles.Failed.Render("Failed to compile."), ""}
		for _, e := range st.Errors {
			lines = append(lines, styles.ErrorText.Render(e))
		}
		return strings.Join(lines, "\n")

	case len(st.Warnings) > 0:
		lines := []string{styles.Warned.Render("Compiled with warnings."), ""}
		for _, w := range st.Warnings {
			lines = append(lines, styles.WarningText.Render(w))
		}
		return strings.Join(lines, "\n")

	default:
		return styles.Ready.Render("Compiled successfully.")
	}
}

// renderDivider draws a horizontal divider line.
func (m model) renderDivider() string {
	return styles.Divider.Render(strings.Repeat("─", safeWidth(m.width-4)))
}

// renderFooter shows the key hints.
func (m model) renderFooter() string {
	return styles.Footer.Render("q quit")
}

// safeWidth clamps a width to at least 1 so lipgloss never receives a
// non-positive dimension.
func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
