// Package viewport turns raw scroll samples into ViewportState snapshots.
//
// A Tracker is a bubbletea sub-model. Samples are coalesced so at most one
// state is committed per frame, and a debounce marks the end of scrolling.
// Both waits are tagged tea.Tick commands, so a message that arrives after
// the tracker moved on (or was disposed) is simply ignored.
package viewport

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soettl/fluentui/internal/domain"
)

const (
	DefaultFrameInterval           = 16 * time.Millisecond
	DefaultStoppedScrollingTimeout = 200 * time.Millisecond
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg commits the latest scroll sample
type FrameMsg struct {
	id  int
	seq int
}

// StoppedScrollingMsg ends a scroll gesture once no frame was committed for
// the stopped scrolling timeout.
type StoppedScrollingMsg struct {
	id  int
	tag int
}

// Option configures a Tracker
type Option func(*Tracker)

// WithFrameInterval sets how often pending samples are committed
func WithFrameInterval(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.frameInterval = d
		}
	}
}

// WithStoppedScrollingTimeout sets the quiet period after which scrolling is
// considered finished
func WithStoppedScrollingTimeout(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.stoppedTimeout = d
		}
	}
}

// Tracker tracks the scroll state of a single scroll container
type Tracker struct {
	id             int
	frameInterval  time.Duration
	stoppedTimeout time.Duration

	state domain.ViewportState

	sample       domain.Vector2D[float64]
	framePending bool
	frameSeq     int
	stopTag      int

	disposed  bool
	committed bool
}

// New creates a tracker at the origin
func New(opts ...Option) Tracker {
	t := Tracker{
		id:             nextID(),
		frameInterval:  DefaultFrameInterval,
		stoppedTimeout: DefaultStoppedScrollingTimeout,
		state:          domain.InitialViewportState(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// State returns the last committed viewport state
func (t Tracker) State() domain.ViewportState {
	return t.state
}

// Committed reports whether the last Update produced a new state
func (t Tracker) Committed() bool {
	return t.committed
}

// Disposed reports whether the tracker was torn down
func (t Tracker) Disposed() bool {
	return t.disposed
}

// Target is the most recent scroll position, committed or not
func (t Tracker) Target() domain.Vector2D[float64] {
	if t.framePending {
		return t.sample
	}
	return t.state.ScrollDistance
}

// SetTimings changes the frame interval and stopped scrolling timeout.
// Waits already scheduled keep their old duration.
func (t *Tracker) SetTimings(frameInterval, stoppedTimeout time.Duration) {
	WithFrameInterval(frameInterval)(t)
	WithStoppedScrollingTimeout(stoppedTimeout)(t)
}

// Scroll records a scroll sample. The first sample of a frame schedules the
// frame; later samples replace it and return nil.
func (t *Tracker) Scroll(x, y float64) tea.Cmd {
	if t.disposed {
		return nil
	}

	t.sample = domain.Vector2D[float64]{x, y}
	if t.framePending {
		return nil
	}

	t.framePending = true
	t.frameSeq++
	id, seq := t.id, t.frameSeq
	return tea.Tick(t.frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{id: id, seq: seq}
	})
}

// ScrollBy moves the vertical target by dy
func (t *Tracker) ScrollBy(dy float64) tea.Cmd {
	target := t.Target()
	return t.Scroll(target.At(domain.AxisX), target.At(domain.AxisY)+dy)
}

// Dispose cancels pending work. Frame and debounce messages that are still in
// flight become no-ops.
func (t *Tracker) Dispose() {
	t.disposed = true
	t.framePending = false
	t.frameSeq++
	t.stopTag++
}

// Update handles frame and debounce messages addressed to this tracker
func (t Tracker) Update(msg tea.Msg) (Tracker, tea.Cmd) {
	t.committed = false

	switch msg := msg.(type) {
	case FrameMsg:
		if t.disposed || msg.id != t.id || msg.seq != t.frameSeq || !t.framePending {
			return t, nil
		}
		return t.commitFrame()

	case StoppedScrollingMsg:
		if t.disposed || msg.id != t.id || msg.tag != t.stopTag {
			return t, nil
		}
		t.state = domain.ViewportState{
			IsScrolling:     false,
			ScrollDistance:  t.state.ScrollDistance,
			ScrollDirection: domain.Vector2D[domain.ScrollDirection]{domain.ScrollNone, domain.ScrollNone},
		}
		t.committed = true
		return t, nil
	}

	return t, nil
}

func (t Tracker) commitFrame() (Tracker, tea.Cmd) {
	t.framePending = false

	prev := t.state.ScrollDistance
	t.state = domain.ViewportState{
		IsScrolling:    true,
		ScrollDistance: t.sample,
		ScrollDirection: domain.Vector2D[domain.ScrollDirection]{
			domain.DirectionBetween(t.sample[domain.AxisX], prev[domain.AxisX]),
			domain.DirectionBetween(t.sample[domain.AxisY], prev[domain.AxisY]),
		},
	}
	t.committed = true

	// Re-arm the debounce; older debounce messages no longer match
	t.stopTag++
	id, tag := t.id, t.stopTag
	return t, tea.Tick(t.stoppedTimeout, func(time.Time) tea.Msg {
		return StoppedScrollingMsg{id: id, tag: tag}
	})
}
