package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/soettl/fluentui/internal/domain"
)

// DateFormat is the short date shown in the Date Modified column
const DateFormat = "1/2/2006"

// RowState describes how a row is decorated
type RowState struct {
	Loaded   bool
	Focused  bool
	Selected bool
	Modal    bool
	Height   int
}

// RowRenderer renders document rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// Render renders doc as exactly st.Height lines of width cells
func (r *RowRenderer) Render(doc domain.Document, st RowState, width int) string {
	height := max(st.Height, 1)
	cols := LayoutColumns(width)

	rowStyle, highlighted := r.rowStyle(st)

	values := map[string]string{
		ColumnCheck: r.checkCell(st),
	}
	if st.Selected && !highlighted {
		values[ColumnCheck] = r.styles.Check.Render(values[ColumnCheck])
	}
	if st.Loaded {
		values[ColumnFileType] = doc.FileType
		values[ColumnName] = doc.Name
		values[ColumnModified] = doc.DateModified.Format(DateFormat)
		values[ColumnModifiedBy] = doc.ModifiedBy
		values[ColumnSize] = doc.FileSize
		if !highlighted {
			values[ColumnFileType] = r.styles.FileType.Render(doc.FileType)
		}
	} else {
		values[ColumnFileType] = "…"
		values[ColumnName] = "Loading…"
		if !highlighted {
			values[ColumnName] = r.styles.Placeholder.Render("Loading…")
		}
	}

	lines := make([]string, 0, height)
	lines = append(lines, joinCells(cols, values))

	if height > 1 {
		detail := ""
		if st.Loaded {
			detail = doc.Key
		}
		if !highlighted {
			detail = r.styles.Detail.Render(detail)
		}
		lines = append(lines, joinCells(cols, map[string]string{ColumnName: detail}))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		line = fit(line, width, false)
		if highlighted {
			line = rowStyle.Render(line)
		}
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

func (r *RowRenderer) rowStyle(st RowState) (lipgloss.Style, bool) {
	switch {
	case st.Focused && st.Selected:
		return r.styles.RowFocusedSelected, true
	case st.Focused:
		return r.styles.RowFocused, true
	case st.Selected:
		return r.styles.RowSelected, true
	default:
		return lipgloss.Style{}, false
	}
}

// checkCell shows check boxes on every row while the selection is modal
func (r *RowRenderer) checkCell(st RowState) string {
	switch {
	case st.Selected:
		return "[x]"
	case st.Modal:
		return "[ ]"
	case st.Focused:
		return " ›"
	default:
		return ""
	}
}

// Placeholder reports whether a rendered row is the loading placeholder
func Placeholder(rendered string) bool {
	return strings.Contains(ansi.Strip(rendered), "Loading…")
}
