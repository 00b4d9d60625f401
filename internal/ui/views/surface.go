package views

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"
)

const (
	// TitleHeight is the title line plus the blank line below it
	TitleHeight = 2
	// ColumnHeaderHeight is the height of the column header
	ColumnHeaderHeight = 1
	// FooterHeight is the status line plus the help or prompt line
	FooterHeight = 2
)

// SurfaceRow is a rendered item placed on the list surface
type SurfaceRow struct {
	Index  int
	Offset int
	Lines  []string
}

// Surface is everything needed to paint the scrolled document
type Surface struct {
	Width         int
	Height        int
	Padding       int
	ScrollTop     int
	SurfaceHeight int
	Title         string
	Rows          []SurfaceRow
}

// SurfaceTop is the line at which the list surface starts
func SurfaceTop(padding int) int {
	return padding + TitleHeight + ColumnHeaderHeight
}

// RowZoneID identifies one painted line of a row for mouse hit testing
func RowZoneID(index, line int) string {
	return fmt.Sprintf("row:%d:%d", index, line)
}

type paintedLine struct {
	index int
	line  int
	text  string
}

// PaintSurface paints Height lines of the document starting at ScrollTop.
// Rows that are not part of Rows leave their lines blank.
func (r *Renderer) PaintSurface(s Surface) string {
	if s.Height <= 0 {
		return ""
	}

	surfaceTop := SurfaceTop(s.Padding)
	first := s.ScrollTop - surfaceTop
	last := first + s.Height

	byLine := make(map[int]paintedLine)
	for _, row := range s.Rows {
		for i, text := range row.Lines {
			line := row.Offset + i
			if line < first || line >= last || line >= s.SurfaceHeight {
				continue
			}
			byLine[line] = paintedLine{index: row.Index, line: i, text: text}
		}
	}

	lines := make([]string, 0, s.Height)
	for y := 0; y < s.Height; y++ {
		doc := s.ScrollTop + y
		switch {
		case doc < s.Padding:
			lines = append(lines, "")
		case doc == s.Padding:
			lines = append(lines, r.styles.Title.Render(fit(s.Title, s.Width, false)))
		case doc < s.Padding+TitleHeight:
			lines = append(lines, "")
		case doc < surfaceTop:
			lines = append(lines, r.renderColumnHeader(s.Width))
		default:
			p, ok := byLine[doc-surfaceTop]
			if !ok {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, zone.Mark(RowZoneID(p.index, p.line), p.text))
		}
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderColumnHeader(width int) string {
	cols := LayoutColumns(width)
	values := make(map[string]string, len(cols))
	for _, c := range cols {
		values[c.Key] = c.Name
	}
	return r.styles.ColumnHeader.Render(fit(joinCells(cols, values), width, false))
}
