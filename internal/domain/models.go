package domain

import (
	"fmt"
	"time"
)

// ItemRange is a contiguous slice of the item sequence: Start is inclusive,
// End is exclusive.
type ItemRange struct {
	Start int
	End   int
}

// NewItemRange creates a range, swapping the bounds if they are reversed
func NewItemRange(start, end int) ItemRange {
	if start > end {
		start, end = end, start
	}
	return ItemRange{Start: start, End: end}
}

// Len returns the number of indices in the range
func (r ItemRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether the range holds no indices
func (r ItemRange) IsEmpty() bool {
	return r.Len() == 0
}

// Contains reports whether index lies inside the range
func (r ItemRange) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// ContainsRange reports whether other lies completely inside r
func (r ItemRange) ContainsRange(other ItemRange) bool {
	return r.Start <= other.Start && r.End >= other.End
}

// Touches reports whether the two ranges overlap or are separated by at most
// one index.
func (r ItemRange) Touches(other ItemRange) bool {
	return other.Start <= r.End+1 && r.Start <= other.End+1
}

// Union returns the smallest range covering both ranges
func (r ItemRange) Union(other ItemRange) ItemRange {
	return ItemRange{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

// Clamp restricts the range to [0, count)
func (r ItemRange) Clamp(count int) ItemRange {
	start := min(max(r.Start, 0), count)
	end := min(max(r.End, start), count)
	return ItemRange{Start: start, End: end}
}

func (r ItemRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Axis indexes a Vector2D
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vector2D holds one value per axis
type Vector2D[T any] [2]T

// At returns the component for the given axis
func (v Vector2D[T]) At(axis Axis) T {
	return v[axis]
}

// ScrollDirection is the direction of the last scroll movement on one axis
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollForward
	ScrollBackward
)

func (d ScrollDirection) String() string {
	switch d {
	case ScrollForward:
		return "forward"
	case ScrollBackward:
		return "backward"
	default:
		return "none"
	}
}

// DirectionBetween classifies a move from prev to current
func DirectionBetween(current, prev float64) ScrollDirection {
	switch {
	case current > prev:
		return ScrollForward
	case current < prev:
		return ScrollBackward
	default:
		return ScrollNone
	}
}

// ViewportState is an immutable snapshot of the scroll container.
// It is replaced, never mutated, on every update.
type ViewportState struct {
	IsScrolling     bool
	ScrollDistance  Vector2D[float64]
	ScrollDirection Vector2D[ScrollDirection]
}

// InitialViewportState is the state of a container that has never scrolled
func InitialViewportState() ViewportState {
	return ViewportState{
		ScrollDistance:  Vector2D[float64]{0, 0},
		ScrollDirection: Vector2D[ScrollDirection]{ScrollNone, ScrollNone},
	}
}

// MaterializedResult is produced fresh by every range computation
type MaterializedResult struct {
	VisibleRange           ItemRange
	MaterializedRange      ItemRange
	FocusedRange           *ItemRange
	MaterializedRanges     []ItemRange // one range, or two disjoint ranges ordered by start
	MaterializedItemsCount int
}

// Document is a row of the demo file list
type Document struct {
	Key          string
	Index        int
	Name         string
	FileType     string
	ModifiedBy   string
	DateModified time.Time
	FileSizeRaw  uint64
	FileSize     string
}
