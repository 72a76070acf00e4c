package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableConfig describes a table to render: optional title, column headers and
// row values. Rows shorter than the header row are padded with empty cells.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a plain-text table with aligned columns. Column widths
// are computed from the widest cell, measured with lipgloss so styled cells
// and wide runes do not break alignment.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range config.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if config.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", FormatHeader(config.Title))
	}

	writeRow := func(cells []string) {
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(cell)
			if pad := width - lipgloss.Width(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			if i < len(widths)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	writeRow(config.Headers)
	separators := make([]string, len(config.Headers))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)
	for _, row := range config.Rows {
		writeRow(row)
	}

	return b.String()
}
