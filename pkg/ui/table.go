package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int
	Align  string // "left", "right"
}

// Table represents a data table
type Table struct {
	Columns []TableColumn
	Rows    [][]string

	// MaxWidth caps the total rendered width including the column gaps.
	// Zero means unlimited.
	MaxWidth int
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table as a string. Column widths grow to fit the
// longest cell, with the declared width as a minimum.
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := t.fitWidths()

	var builder strings.Builder

	headerParts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headerParts[i] = padString(col.Header, widths[i], "left")
	}
	builder.WriteString(StyleTableHeader.Render(strings.Join(headerParts, "  ")))
	builder.WriteString("\n")

	separatorParts := make([]string, len(t.Columns))
	for i := range t.Columns {
		separatorParts[i] = strings.Repeat("─", widths[i])
	}
	builder.WriteString(StyleTableBorder.Render(strings.Join(separatorParts, "  ")))
	builder.WriteString("\n")

	for idx, row := range t.Rows {
		rowParts := make([]string, len(t.Columns))
		for i, cell := range row {
			if i < len(t.Columns) {
				align := t.Columns[i].Align
				if align == "" {
					align = "left"
				}
				rowParts[i] = padString(cell, widths[i], align)
			}
		}

		var rowStyle lipgloss.Style
		if idx%2 == 0 {
			rowStyle = StyleTableRow
		} else {
			rowStyle = StyleTableRowAlt
		}

		builder.WriteString(rowStyle.Render(strings.Join(rowParts, "  ")))
		builder.WriteString("\n")
	}

	return builder.String()
}

// fitWidths computes the column widths: each column grows from its declared
// width to fit the longest cell, then growth is given back, widest column
// first, while the total exceeds MaxWidth. Declared widths are the floor.
func (t *Table) fitWidths() []int {
	floors := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		floors[i] = len(col.Header)
		if col.Width > floors[i] {
			floors[i] = col.Width
		}
	}

	widths := make([]int, len(floors))
	copy(widths, floors)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if t.MaxWidth <= 0 {
		return widths
	}

	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	for total > t.MaxWidth {
		idx := -1
		for i := range widths {
			if widths[i] > floors[i] && (idx == -1 || widths[i] > widths[idx]) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		widths[idx]--
		total--
	}
	return widths
}

// padString pads a string to the specified width with alignment, clipping
// cells that no longer fit a capped column
func padString(s string, width int, align string) string {
	if len(s) > width {
		if width <= 3 {
			return s[:width]
		}
		return s[:width-3] + "..."
	}
	if len(s) == width {
		return s
	}
	padding := strings.Repeat(" ", width-len(s))
	if align == "right" {
		return padding + s
	}
	return s + padding
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", StyleAccent.Render(key), value)
}
