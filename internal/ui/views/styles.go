package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title              lipgloss.Style
	ColumnHeader       lipgloss.Style
	Dim                lipgloss.Style
	Status             lipgloss.Style
	StatusScrolling    lipgloss.Style
	StatusError        lipgloss.Style
	StatusLoading      lipgloss.Style
	StatusSuccess      lipgloss.Style
	Help               lipgloss.Style
	Prompt             lipgloss.Style
	FileType           lipgloss.Style
	Placeholder        lipgloss.Style
	Detail             lipgloss.Style
	RowFocused         lipgloss.Style
	RowSelected        lipgloss.Style
	RowFocusedSelected lipgloss.Style
	Check              lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		ColumnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Underline(true),
		Dim:                lipgloss.NewStyle().Faint(true),
		Status:             lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusScrolling:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusError:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:               lipgloss.NewStyle().Faint(true),
		Prompt:             lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		FileType:           lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Placeholder:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Detail:             lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		RowFocused:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true),
		RowSelected:        lipgloss.NewStyle().Background(lipgloss.Color("238")),
		RowFocusedSelected: lipgloss.NewStyle().Background(lipgloss.Color("239")).Bold(true),
		Check:              lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}
