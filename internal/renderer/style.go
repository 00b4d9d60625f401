package renderer

import (
	"strconv"

	gocache "github.com/patrickmn/go-cache"

	"github.com/soettl/fluentui/internal/window"
)

// Positioning selects how an item's offset is expressed
type Positioning int

const (
	// PositionTranslate moves the item with a transform
	PositionTranslate Positioning = iota
	// PositionTop moves the item with a top offset
	PositionTop
)

// PositioningFor maps the hardware acceleration flag to a strategy
func PositioningFor(enableHardwareAccelleration bool) Positioning {
	if enableHardwareAccelleration {
		return PositionTranslate
	}
	return PositionTop
}

func (p Positioning) String() string {
	if p == PositionTop {
		return "top"
	}
	return "translate"
}

// Style is the absolute position of one item on the list surface
type Style struct {
	Height      float64
	Offset      float64
	Positioning Positioning
}

func (s *Style) String() string {
	offset := strconv.FormatFloat(s.Offset, 'f', -1, 64)
	if s.Positioning == PositionTop {
		return "top: " + offset + "px"
	}
	return "translate(0, " + offset + "px)"
}

// Line returns the surface line the item starts on
func (s *Style) Line() int {
	return int(s.Offset)
}

// cacheKey is the geometry a set of cached styles was computed for
type cacheKey struct {
	viewportHeight float64
	overscanRatio  float64
	itemHeight     float64
	surfaceTop     float64
	positioning    Positioning
}

// StyleCache stores computed item styles keyed by item index. It is flushed
// whenever the geometry it was filled under changes.
type StyleCache struct {
	items   *gocache.Cache
	key     cacheKey
	synced  bool
	hits    int
	misses  int
	flushes int
}

// NewStyleCache creates an empty cache
func NewStyleCache() *StyleCache {
	return &StyleCache{
		// Entries never expire, so no janitor goroutine is started; only a
		// geometry change invalidates them
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Sync flushes the cache if the geometry or positioning changed since the
// last call. It reports whether a flush happened.
func (c *StyleCache) Sync(g window.Geometry, positioning Positioning) bool {
	key := cacheKey{
		viewportHeight: g.ViewportHeight,
		overscanRatio:  g.OverscanRatio,
		itemHeight:     g.ItemHeight,
		surfaceTop:     g.SurfaceTop,
		positioning:    positioning,
	}
	if c.synced && key == c.key {
		return false
	}

	flushed := c.synced
	if flushed {
		c.items.Flush()
		c.flushes++
	}
	c.key = key
	c.synced = true
	return flushed
}

// Get returns the style for index, computing and storing it on a miss.
// Repeated calls under the same geometry return the same pointer.
func (c *StyleCache) Get(index int) *Style {
	k := strconv.Itoa(index)
	if cached, found := c.items.Get(k); found {
		if style, ok := cached.(*Style); ok {
			c.hits++
			return style
		}
	}

	c.misses++
	style := &Style{
		Height:      c.key.itemHeight,
		Offset:      float64(index) * c.key.itemHeight,
		Positioning: c.key.positioning,
	}
	c.items.Set(k, style, gocache.NoExpiration)
	return style
}

// Len returns the number of cached styles
func (c *StyleCache) Len() int {
	return c.items.ItemCount()
}
