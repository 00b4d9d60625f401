package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/soettl/fluentui/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	Padding   int
	ScrollTop int
	Title     string

	SurfaceHeight int
	Rows          []SurfaceRow

	Status Status

	// Prompt replaces the help line while a text mode is active
	Prompt   string
	HelpKeys []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	rows   *RowRenderer
	help   help.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	h := help.New()
	h.ShortSeparator = " • "
	return &Renderer{
		styles: styles,
		rows:   NewRowRenderer(styles),
		help:   h,
	}
}

// Styles returns the styles used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderRow renders a single document row
func (r *Renderer) RenderRow(doc domain.Document, st RowState, width int) string {
	return r.rows.Render(doc, st, width)
}

// ViewportHeight is the number of lines available to the list for a terminal
// of the given height
func ViewportHeight(termHeight int) int {
	return max(termHeight-FooterHeight, 0)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	body := r.PaintSurface(Surface{
		Width:         width,
		Height:        ViewportHeight(state.Height),
		Padding:       state.Padding,
		ScrollTop:     state.ScrollTop,
		SurfaceHeight: state.SurfaceHeight,
		Title:         state.Title,
		Rows:          state.Rows,
	})

	var footer string
	if state.Prompt != "" {
		footer = r.styles.Prompt.Render(state.Prompt)
	} else {
		r.help.Width = width
		footer = r.styles.Help.Render(r.help.ShortHelpView(state.HelpKeys))
	}

	parts := []string{}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, r.renderStatus(state.Status, width), footer)

	return strings.Join(parts, "\n")
}
