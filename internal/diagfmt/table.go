// Package diagfmt renders validation diagnostics as aligned text for
// terminal display.
package diagfmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/juniarta/devpulse/internal/validation"
)

const (
	errorTag   = "error"
	warningTag = "warning"

	// colGap separates table columns.
	colGap = "  "
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// FormatValidation renders the registry as a titled four-column table:
// page, severity, message, spec URL. The page label appears only on the
// first row for each page; errors come before warnings, and each page is
// followed by a blank separator row. Identical registry content always
// produces identical output.
func FormatValidation(reg validation.Registry) string {
	var rows [][4]string

	for _, page := range reg.Pages() {
		d, ok := reg.Page(page)
		if !ok {
			continue
		}

		label := page
		for _, e := range d.Errors {
			rows = append(rows, [4]string{label, errorStyle.Render(errorTag), entryMessage(e), e.SpecURL})
			label = ""
		}
		for _, e := range d.Warnings {
			rows = append(rows, [4]string{label, warningStyle.Render(warningTag), entryMessage(e), e.SpecURL})
			label = ""
		}
		rows = append(rows, [4]string{})
	}

	return titleStyle.Render("Page validation") + "\n\n" + renderTable(rows)
}

// entryMessage prefixes the message with its source position when known.
func entryMessage(e validation.Entry) string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// renderTable lays out rows with left-aligned columns. Column widths are
// computed from the visual width of each cell (styling escape sequences
// stripped) so colored cells do not distort alignment.
func renderTable(rows [][4]string) string {
	var widths [4]int
	for _, row := range rows {
		for i, cell := range row {
			if w := visualWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			line.WriteString(cell)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-visualWidth(cell)))
				line.WriteString(colGap)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// visualWidth returns the displayed width of s, ignoring escape sequences.
func visualWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}
