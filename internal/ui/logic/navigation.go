package logic

import "math"

// Navigator handles focus movement and keeps the focused row revealed
type Navigator struct {
	focusedIndex   int
	itemCount      int
	itemHeight     float64
	surfaceTop     float64
	viewportHeight float64
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{itemHeight: 1}
}

// UpdateState updates the navigator's geometry and re-clamps the focus
func (n *Navigator) UpdateState(itemCount int, itemHeight, surfaceTop, viewportHeight float64) {
	n.itemCount = max(itemCount, 0)
	if itemHeight > 0 {
		n.itemHeight = itemHeight
	}
	n.surfaceTop = math.Max(surfaceTop, 0)
	n.viewportHeight = math.Max(viewportHeight, 0)
	n.focusedIndex = n.clamp(n.focusedIndex)
}

// GetFocusedIndex returns the current focused index
func (n *Navigator) GetFocusedIndex() int {
	if n.itemCount == 0 {
		return -1
	}
	return n.focusedIndex
}

// GetMaxIndex returns the maximum focusable index, -1 for an empty list
func (n *Navigator) GetMaxIndex() int {
	return n.itemCount - 1
}

// SetFocusedIndex focuses index, clamped to the list
func (n *Navigator) SetFocusedIndex(index int) int {
	n.focusedIndex = n.clamp(index)
	return n.GetFocusedIndex()
}

// MoveFocus moves the focus by delta rows
func (n *Navigator) MoveFocus(delta int) int {
	return n.SetFocusedIndex(n.focusedIndex + delta)
}

// RowsPerPage is the number of whole rows that fit in the viewport
func (n *Navigator) RowsPerPage() int {
	return max(int(math.Floor(n.viewportHeight/n.itemHeight)), 1)
}

// MaxScrollTop is the largest scroll offset that still fills the viewport
func (n *Navigator) MaxScrollTop() float64 {
	content := n.surfaceTop + float64(n.itemCount)*n.itemHeight
	return math.Max(content-n.viewportHeight, 0)
}

// ClampScroll limits a scroll offset to the scrollable range
func (n *Navigator) ClampScroll(top float64) float64 {
	if math.IsNaN(top) {
		return 0
	}
	return math.Min(math.Max(top, 0), n.MaxScrollTop())
}

// Reveal returns the scroll offset closest to top that shows the whole
// focused row. Focusing the first row scrolls back to the very top.
func (n *Navigator) Reveal(top float64) float64 {
	if n.itemCount == 0 || n.focusedIndex == 0 {
		return n.ClampScroll(0)
	}

	rowTop := n.surfaceTop + float64(n.focusedIndex)*n.itemHeight
	rowBottom := rowTop + n.itemHeight

	switch {
	case rowTop < top:
		top = rowTop
	case rowBottom > top+n.viewportHeight:
		top = rowBottom - n.viewportHeight
	}
	return n.ClampScroll(top)
}

// IndexAtLine returns the row painted at viewport line y for a scroll offset
func (n *Navigator) IndexAtLine(top float64, y int) (int, bool) {
	surfaceLine := top + float64(y) - n.surfaceTop
	if surfaceLine < 0 {
		return 0, false
	}
	index := int(math.Floor(surfaceLine / n.itemHeight))
	if index >= n.itemCount {
		return 0, false
	}
	return index, true
}

func (n *Navigator) clamp(index int) int {
	if n.itemCount == 0 {
		return 0
	}
	return min(max(index, 0), n.itemCount-1)
}
