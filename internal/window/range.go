// Package window computes which rows of a fixed row height list are visible
// and which are materialized for a given viewport state.
package window

import (
	"math"

	"github.com/soettl/fluentui/internal/domain"
)

const (
	// MinOverscanCount is the floor for the overscan on either side
	MinOverscanCount = 1
	// TrailingOverscanWhileScrolling is the overscan kept on the side the user
	// scrolls away from
	TrailingOverscanWhileScrolling = 1
)

// VisibleRange returns the rows intersecting the viewport. The end includes one
// extra row so a partially visible trailing row is always rendered.
func VisibleRange(state domain.ViewportState, g Geometry) domain.ItemRange {
	if g.ItemCount == 0 {
		return domain.ItemRange{}
	}

	scrollTop := state.ScrollDistance.At(domain.AxisY) - g.SurfaceTop

	start := rowCount(math.Floor(scrollTop/g.ItemHeight), g.ItemCount)
	end := rowCount(math.Ceil((scrollTop+g.ViewportHeight)/g.ItemHeight)+1, g.ItemCount)

	// Scrolled past the end (or far above the surface) still yields a well formed range
	end = max(end, start)

	return domain.ItemRange{Start: start, End: end}
}

// OverscanCounts returns how many rows to add behind and ahead of the visible
// range. While scrolling only the side in the scroll direction is overscanned
// fully; the other keeps a single trailing row.
func OverscanCounts(state domain.ViewportState, g Geometry) (behind, ahead int) {
	count := g.OverscanCount()
	direction := state.ScrollDirection.At(domain.AxisY)

	behind = TrailingOverscanWhileScrolling
	if !state.IsScrolling || direction == domain.ScrollBackward {
		behind = count
	}

	ahead = TrailingOverscanWhileScrolling
	if !state.IsScrolling || direction == domain.ScrollForward {
		ahead = count
	}

	return behind, ahead
}

// MaterializedRanges extends the visible range by the overscan and merges in
// the range an optional override asks to keep materialized.
func MaterializedRanges(visible domain.ItemRange, state domain.ViewportState, g Geometry, override MaterializeFunc) domain.MaterializedResult {
	behind, ahead := OverscanCounts(state, g)

	materialized := domain.ItemRange{
		Start: max(0, visible.Start-behind),
		End:   min(g.ItemCount, visible.End+ahead),
	}

	result := domain.MaterializedResult{
		VisibleRange:      visible,
		MaterializedRange: materialized,
	}

	if override != nil {
		resp := override(MaterializeRequest{
			VisibleRange:      visible,
			MaterializedRange: materialized,
			ItemCount:         g.ItemCount,
		})
		if resp.MaterializedRange != nil {
			// The override may widen the base range but never drop visible rows
			materialized = resp.MaterializedRange.Clamp(g.ItemCount).Union(visible)
			result.MaterializedRange = materialized
		}
		if resp.FocusedRange != nil {
			focused := resp.FocusedRange.Clamp(g.ItemCount)
			if !focused.IsEmpty() {
				result.FocusedRange = &focused
			}
		}
	}

	result.MaterializedRanges = mergeRanges(materialized, result.FocusedRange)
	for _, r := range result.MaterializedRanges {
		result.MaterializedItemsCount += r.Len()
	}

	return result
}

// mergeRanges unions the focused range into the base range when they overlap
// or are at most one index apart, otherwise returns both ordered by start.
func mergeRanges(base domain.ItemRange, focused *domain.ItemRange) []domain.ItemRange {
	if focused == nil {
		return []domain.ItemRange{base}
	}
	if base.IsEmpty() {
		return []domain.ItemRange{*focused}
	}
	if base.Touches(*focused) {
		return []domain.ItemRange{base.Union(*focused)}
	}
	if focused.Start < base.Start {
		return []domain.ItemRange{*focused, base}
	}
	return []domain.ItemRange{base, *focused}
}

// Compute validates the geometry and runs the full range computation
func Compute(state domain.ViewportState, g Geometry, override MaterializeFunc) (domain.MaterializedResult, error) {
	if err := g.Validate(); err != nil {
		return domain.MaterializedResult{}, err
	}

	visible := VisibleRange(state, g)
	return MaterializedRanges(visible, state, g, override), nil
}
