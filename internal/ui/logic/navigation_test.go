package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 100 rows of 2 lines below a 3 line header in a 20 line viewport
func newTestNavigator() *Navigator {
	n := NewNavigator()
	n.UpdateState(100, 2, 3, 20)
	return n
}

func TestMoveFocusClamps(t *testing.T) {
	n := newTestNavigator()

	require.Equal(t, 0, n.MoveFocus(-1))
	require.Equal(t, 5, n.MoveFocus(5))
	require.Equal(t, 99, n.MoveFocus(1000))
	require.Equal(t, 99, n.GetMaxIndex())
}

func TestEmptyList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 2, 3, 20)

	require.Equal(t, -1, n.GetFocusedIndex())
	require.Equal(t, -1, n.SetFocusedIndex(10))
	require.Equal(t, 0.0, n.MaxScrollTop())
	require.Equal(t, 0.0, n.Reveal(50))
}

func TestShrinkingListClampsFocus(t *testing.T) {
	n := newTestNavigator()
	n.SetFocusedIndex(90)

	n.UpdateState(10, 2, 3, 20)
	require.Equal(t, 9, n.GetFocusedIndex())
}

func TestMaxScrollTop(t *testing.T) {
	n := newTestNavigator()

	require.Equal(t, 183.0, n.MaxScrollTop())
	require.Equal(t, 183.0, n.ClampScroll(1000))
	require.Equal(t, 0.0, n.ClampScroll(-4))
}

func TestReveal(t *testing.T) {
	tests := []struct {
		name  string
		focus int
		top   float64
		want  float64
	}{
		{"already visible", 3, 0, 0},
		{"below viewport", 20, 0, 25},
		{"above viewport", 10, 60, 23},
		{"first row shows header", 0, 60, 0},
		{"last row", 99, 0, 183},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNavigator()
			n.SetFocusedIndex(tt.focus)
			require.Equal(t, tt.want, n.Reveal(tt.top))
		})
	}
}

func TestIndexAtLine(t *testing.T) {
	n := newTestNavigator()

	_, ok := n.IndexAtLine(0, 2)
	require.False(t, ok, "header line")

	idx, ok := n.IndexAtLine(0, 3)
	require.True(t, ok)
	require.Equal(t, 0, idx)

	idx, ok = n.IndexAtLine(10, 4)
	require.True(t, ok)
	require.Equal(t, 5, idx)

	_, ok = n.IndexAtLine(183, 25)
	require.False(t, ok, "past the last row")
}

func TestRowsPerPage(t *testing.T) {
	require.Equal(t, 10, newTestNavigator().RowsPerPage())

	n := NewNavigator()
	n.UpdateState(10, 2, 0, 1)
	require.Equal(t, 1, n.RowsPerPage())
}
