// Package renderer materializes the rows of a windowed list. It runs the range
// computation and calls back once per materialized row with a cached
// absolute position.
package renderer

import (
	"fmt"

	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/window"
)

// ItemProps is passed to OnRenderItem
type ItemProps struct {
	Index int
	Style *Style
}

// ItemsRenderedProps is passed to OnItemsRendered after each render
type ItemsRenderedProps struct {
	VisibleRange      domain.ItemRange
	MaterializedRange domain.ItemRange
	FocusedRange      *domain.ItemRange
}

// Callbacks connect the renderer to the embedding list
type Callbacks struct {
	// OnRenderItem renders one row; an empty string renders nothing
	OnRenderItem func(ItemProps) string
	// OnItemsRendered is notified after every render
	OnItemsRendered func(ItemsRenderedProps)
	// OnGetMaterializedRanges may keep extra rows materialized
	OnGetMaterializedRanges window.MaterializeFunc
}

// RenderedItem is a materialized row
type RenderedItem struct {
	Index   int
	Style   *Style
	Content string
}

// Frame is the output of one render
type Frame struct {
	Result                domain.MaterializedResult
	Items                 []RenderedItem
	SurfaceHeight         float64
	PointerEventsDisabled bool
	Positioning           Positioning
}

// Stats describes style cache usage
type Stats struct {
	Hits    int
	Misses  int
	Flushes int
	Entries int
}

// Renderer owns the style cache of one list. It is not safe for concurrent use.
type Renderer struct {
	cache       *StyleCache
	positioning Positioning
}

// New creates a renderer; translate positioning is used when hardware
// acceleration is enabled
func New(enableHardwareAccelleration bool) *Renderer {
	return &Renderer{
		cache:       NewStyleCache(),
		positioning: PositioningFor(enableHardwareAccelleration),
	}
}

// SetHardwareAccelleration switches the positioning strategy; cached styles
// are dropped on the next render
func (r *Renderer) SetHardwareAccelleration(enabled bool) {
	r.positioning = PositioningFor(enabled)
}

// Positioning returns the current positioning strategy
func (r *Renderer) Positioning() Positioning {
	return r.positioning
}

// Render computes the ranges for state and renders every materialized row
func (r *Renderer) Render(state domain.ViewportState, g window.Geometry, cb Callbacks) (Frame, error) {
	result, err := window.Compute(state, g, cb.OnGetMaterializedRanges)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to compute ranges: %w", err)
	}

	r.cache.Sync(g, r.positioning)

	frame := Frame{
		Result:                result,
		Items:                 make([]RenderedItem, 0, result.MaterializedItemsCount),
		SurfaceHeight:         g.SurfaceHeight(),
		PointerEventsDisabled: state.IsScrolling,
		Positioning:           r.positioning,
	}

	for _, materialized := range result.MaterializedRanges {
		for index := materialized.Start; index < materialized.End; index++ {
			style := r.cache.Get(index)

			content := ""
			if cb.OnRenderItem != nil {
				content = cb.OnRenderItem(ItemProps{Index: index, Style: style})
			}
			if content == "" {
				continue
			}
			frame.Items = append(frame.Items, RenderedItem{Index: index, Style: style, Content: content})
		}
	}

	if cb.OnItemsRendered != nil {
		cb.OnItemsRendered(ItemsRenderedProps{
			VisibleRange:      result.VisibleRange,
			MaterializedRange: result.MaterializedRange,
			FocusedRange:      result.FocusedRange,
		})
	}

	return frame, nil
}

// Stats returns style cache statistics
func (r *Renderer) Stats() Stats {
	return Stats{
		Hits:    r.cache.hits,
		Misses:  r.cache.misses,
		Flushes: r.cache.flushes,
		Entries: r.cache.Len(),
	}
}
