package window

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is wrapped by every geometry validation error
var ErrInvalidGeometry = errors.New("invalid list geometry")

var (
	ErrInvalidItemHeight      = fmt.Errorf("%w: item height must be positive", ErrInvalidGeometry)
	ErrNegativeItemCount      = fmt.Errorf("%w: item count must not be negative", ErrInvalidGeometry)
	ErrNegativeViewportHeight = fmt.Errorf("%w: viewport height must not be negative", ErrInvalidGeometry)
	ErrNegativeOverscan       = fmt.Errorf("%w: overscan ratio must not be negative", ErrInvalidGeometry)
	ErrNotFinite              = fmt.Errorf("%w: lengths and ratios must be finite", ErrInvalidGeometry)
)

// Geometry describes a fixed row height list inside a scroll container.
// All lengths share one unit (terminal lines in this application).
type Geometry struct {
	ItemCount      int
	ItemHeight     float64
	ViewportHeight float64
	// SurfaceTop is the distance from the container top to the first item
	SurfaceTop    float64
	OverscanRatio float64
	// ScrollOverscanRatio is accepted and validated but not used yet
	ScrollOverscanRatio float64
}

// Validate rejects geometry the range math is not defined for
func (g Geometry) Validate() error {
	if math.IsNaN(g.ItemHeight) || math.IsInf(g.ItemHeight, 0) || g.ItemHeight <= 0 {
		return fmt.Errorf("%w (got %v)", ErrInvalidItemHeight, g.ItemHeight)
	}
	if g.ItemCount < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeItemCount, g.ItemCount)
	}
	for _, v := range []float64{g.ViewportHeight, g.SurfaceTop, g.OverscanRatio, g.ScrollOverscanRatio} {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w (got %v)", ErrNotFinite, v)
		}
	}
	if math.IsNaN(g.SurfaceTop) {
		return fmt.Errorf("%w: surface top (got %v)", ErrNotFinite, g.SurfaceTop)
	}
	if math.IsNaN(g.ViewportHeight) || g.ViewportHeight < 0 {
		return fmt.Errorf("%w (got %v)", ErrNegativeViewportHeight, g.ViewportHeight)
	}
	if math.IsNaN(g.OverscanRatio) || g.OverscanRatio < 0 {
		return fmt.Errorf("%w (got %v)", ErrNegativeOverscan, g.OverscanRatio)
	}
	if math.IsNaN(g.ScrollOverscanRatio) || g.ScrollOverscanRatio < 0 {
		return fmt.Errorf("%w: scroll overscan ratio (got %v)", ErrNegativeOverscan, g.ScrollOverscanRatio)
	}
	return nil
}

// SurfaceHeight is the full scrollable height of the item surface
func (g Geometry) SurfaceHeight() float64 {
	return float64(g.ItemCount) * g.ItemHeight
}

// OverscanCount is the number of rows rendered beyond the visible range on a
// side that gets full overscan.
func (g Geometry) OverscanCount() int {
	overscanHeight := g.OverscanRatio * g.ViewportHeight
	return max(rowCount(math.Ceil(overscanHeight/g.ItemHeight), g.ItemCount), MinOverscanCount)
}

// rowCount converts a row position to an int clamped to [0, limit]. Clamping
// happens before the conversion so huge values cannot overflow.
func rowCount(rows float64, limit int) int {
	switch {
	case math.IsNaN(rows) || rows <= 0:
		return 0
	case rows >= float64(limit):
		return limit
	}
	return int(rows)
}
