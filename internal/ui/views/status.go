package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/soettl/fluentui/internal/domain"
)

// MessageKind decides how the status message is colored
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// Status is the state shown in the status line
type Status struct {
	ItemCount    int
	LoadedCount  int
	Visible      domain.ItemRange
	Materialized []domain.ItemRange
	Rendered     int
	Scrolling    bool
	Direction    domain.ScrollDirection
	Selected     int
	Loading      int
	Compact      bool
	Message      string
	MessageKind  MessageKind
}

// renderStatus renders the status line: list position on the left, activity
// on the right
func (r *Renderer) renderStatus(st Status, width int) string {
	left := r.styles.Status.Render(r.positionText(st))

	var right []string
	if st.Message != "" {
		right = append(right, r.messageStyle(st.MessageKind).Render(st.Message))
	}
	if st.Loading > 0 {
		right = append(right, r.styles.StatusLoading.Render(fmt.Sprintf("⟳ Loading %d", st.Loading)))
	}
	if st.Selected > 0 {
		right = append(right, r.styles.StatusSuccess.Render(fmt.Sprintf("%s selected", humanize.Comma(int64(st.Selected)))))
	}
	if st.Scrolling {
		arrow := "↕"
		switch st.Direction {
		case domain.ScrollForward:
			arrow = "↓"
		case domain.ScrollBackward:
			arrow = "↑"
		}
		right = append(right, r.styles.StatusScrolling.Render(arrow+" scrolling"))
	}

	rightContent := strings.Join(right, r.styles.Dim.Render(" | "))
	gap := width - lipgloss.Width(left) - lipgloss.Width(rightContent)
	if gap < 1 {
		return fit(left+" "+rightContent, width, false)
	}
	return left + strings.Repeat(" ", gap) + rightContent
}

func (r *Renderer) positionText(st Status) string {
	if st.ItemCount == 0 {
		return "No items"
	}

	var ranges []string
	for _, m := range st.Materialized {
		ranges = append(ranges, m.String())
	}

	first := min(st.Visible.Start+1, st.ItemCount)
	text := fmt.Sprintf("Rows %s-%s of %s · rendered %d %s · loaded %s",
		humanize.Comma(int64(first)),
		humanize.Comma(int64(st.Visible.End)),
		humanize.Comma(int64(st.ItemCount)),
		st.Rendered,
		strings.Join(ranges, " "),
		humanize.Comma(int64(st.LoadedCount)),
	)
	if st.Compact {
		text += " · compact"
	}
	return text
}

func (r *Renderer) messageStyle(kind MessageKind) lipgloss.Style {
	switch kind {
	case MessageError:
		return r.styles.StatusError
	case MessageSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.Status
	}
}
