package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Column describes one column of the details list
type Column struct {
	Key        string
	Name       string
	Width      int
	AlignRight bool
}

const (
	ColumnCheck      = "check"
	ColumnFileType   = "type"
	ColumnName       = "name"
	ColumnModified   = "modified"
	ColumnModifiedBy = "modifiedBy"
	ColumnSize       = "size"

	minNameWidth = 16
	columnGap    = 1
)

// documentColumns are the columns of the file list; a zero width column takes
// the remaining space
var documentColumns = []Column{
	{Key: ColumnCheck, Width: 3},
	{Key: ColumnFileType, Name: "Type", Width: 6},
	{Key: ColumnName, Name: "Name"},
	{Key: ColumnModified, Name: "Date Modified", Width: 13},
	{Key: ColumnModifiedBy, Name: "Modified By", Width: 18},
	{Key: ColumnSize, Name: "File Size", Width: 9, AlignRight: true},
}

// dropOrder lists the columns hidden first when the terminal is narrow
var dropOrder = []string{ColumnModifiedBy, ColumnModified, ColumnFileType}

// LayoutColumns returns the columns that fit into width with their final widths
func LayoutColumns(width int) []Column {
	hidden := map[string]bool{}

	for {
		cols := make([]Column, 0, len(documentColumns))
		fixed := 0
		for _, c := range documentColumns {
			if hidden[c.Key] {
				continue
			}
			cols = append(cols, c)
			fixed += c.Width
		}
		fixed += columnGap * (len(cols) - 1)

		nameWidth := width - fixed
		if nameWidth >= minNameWidth || len(hidden) == len(dropOrder) {
			for i := range cols {
				if cols[i].Key == ColumnName {
					cols[i].Width = max(nameWidth, 1)
				}
			}
			return cols
		}
		hidden[dropOrder[len(hidden)]] = true
	}
}

// CheckColumnWidth is the width of the leading check column, used for mouse
// hit testing
func CheckColumnWidth() int {
	return documentColumns[0].Width
}

// fit truncates s to width cells and pads it
func fit(s string, width int, alignRight bool) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

// joinCells lays out cell values by column
func joinCells(cols []Column, values map[string]string) string {
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, fit(values[c.Key], c.Width, c.AlignRight))
	}
	return strings.Join(cells, strings.Repeat(" ", columnGap))
}
