package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column. Right aligns cells to the right edge,
// which suits numeric columns such as chain IDs.
type Column struct {
	Title string
	Width int
	Right bool
}

// Row is a slice of cell values.
type Row []string

// Table is a fixed-width text table. Cells longer than their column are cut.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable creates a new table.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// Render returns the header, a divider and every row, one per line.
// Alignment is done on the raw text before styling; lipgloss Width would
// wrap cells instead of cutting them.
func (t *Table) Render() string {
	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMeta)

	line := func(cell func(i int, col Column) string) string {
		parts := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			parts[i] = cell(i, col)
		}
		return strings.Join(parts, " ") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(line(func(_ int, col Column) string {
		return headerStyle.Render(col.align(col.Title))
	}))
	sb.WriteString(line(func(_ int, col Column) string {
		return dimStyle.Render(strings.Repeat("-", col.Width))
	}))
	for _, row := range t.Rows {
		sb.WriteString(line(func(i int, col Column) string {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			return cellStyle.Render(col.align(val))
		}))
	}
	return sb.String()
}

func (c Column) align(s string) string {
	if c.Right {
		return padLeft(s, c.Width)
	}
	return pad(s, c.Width)
}

// KeyValueBlock renders a set of key-value pairs in a bordered box.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fmt.Sprintf("%-20s", p[0]+":"))
		val := StyleValue.Render(p[1])
		sb.WriteString("  " + key + " " + val + "\n")
	}
	return StyleBorder.Render(sb.String())
}

// pad returns s left-aligned within exactly width chars, truncating if needed.
func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft is pad with the text pushed to the right edge.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
