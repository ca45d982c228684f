package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableOption adjusts RenderTable layout.
type TableOption func(*tableLayout)

type tableLayout struct {
	rightAligned map[int]bool
}

// AlignRight right-aligns the given column indexes, for numeric columns.
func AlignRight(cols ...int) TableOption {
	return func(l *tableLayout) {
		for _, c := range cols {
			l.rightAligned[c] = true
		}
	}
}

// RenderTable renders an aligned table with a header separator line. Column
// widths are measured on visible width so styled cells line up.
func RenderTable(headers []string, rows [][]string, opts ...TableOption) string {
	if len(headers) == 0 {
		return ""
	}
	layout := tableLayout{rightAligned: map[int]bool{}}
	for _, opt := range opts {
		opt(&layout)
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			if style != nil {
				cell = style(cell)
			}
			if layout.rightAligned[i] {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if i < cols-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
