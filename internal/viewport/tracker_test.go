package viewport

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/soettl/fluentui/internal/domain"
)

func frame(t Tracker) FrameMsg {
	return FrameMsg{id: t.id, seq: t.frameSeq}
}

func stopped(t Tracker) StoppedScrollingMsg {
	return StoppedScrollingMsg{id: t.id, tag: t.stopTag}
}

func TestTracker_InitialState(t *testing.T) {
	tr := New()
	require.Equal(t, domain.InitialViewportState(), tr.State())
	require.False(t, tr.Committed())
}

func TestTracker_CoalescesSamplesPerFrame(t *testing.T) {
	tr := New()

	require.NotNil(t, tr.Scroll(0, 10))
	require.Nil(t, tr.Scroll(0, 20))
	require.Nil(t, tr.Scroll(0, 30))

	tr, cmd := tr.Update(frame(tr))
	require.True(t, tr.Committed())
	require.NotNil(t, cmd, "commit should arm the stopped scrolling debounce")

	state := tr.State()
	require.True(t, state.IsScrolling)
	require.Equal(t, 30.0, state.ScrollDistance.At(domain.AxisY))
	require.Equal(t, domain.ScrollForward, state.ScrollDirection.At(domain.AxisY))
	require.Equal(t, domain.ScrollNone, state.ScrollDirection.At(domain.AxisX))

	// A duplicate frame message commits nothing
	tr, cmd = tr.Update(frame(tr))
	require.False(t, tr.Committed())
	require.Nil(t, cmd)
}

func TestTracker_DirectionAgainstLastCommit(t *testing.T) {
	tr := New()

	tr.Scroll(0, 100)
	tr, _ = tr.Update(frame(tr))

	tr.Scroll(0, 150)
	tr.Scroll(0, 40)
	tr, _ = tr.Update(frame(tr))
	require.Equal(t, domain.ScrollBackward, tr.State().ScrollDirection.At(domain.AxisY))

	tr.Scroll(5, 40)
	tr, _ = tr.Update(frame(tr))
	require.Equal(t, domain.ScrollNone, tr.State().ScrollDirection.At(domain.AxisY))
	require.Equal(t, domain.ScrollForward, tr.State().ScrollDirection.At(domain.AxisX))
}

func TestTracker_StoppedScrolling(t *testing.T) {
	tr := New()

	tr.Scroll(0, 500)
	tr, _ = tr.Update(frame(tr))
	firstStop := stopped(tr)

	tr.Scroll(0, 600)
	tr, _ = tr.Update(frame(tr))

	// The debounce armed by the first frame was superseded
	tr, _ = tr.Update(firstStop)
	require.False(t, tr.Committed())
	require.True(t, tr.State().IsScrolling)

	tr, cmd := tr.Update(stopped(tr))
	require.Nil(t, cmd)
	require.True(t, tr.Committed())

	state := tr.State()
	require.False(t, state.IsScrolling)
	require.Equal(t, 600.0, state.ScrollDistance.At(domain.AxisY))
	require.Equal(t, domain.ScrollNone, state.ScrollDirection.At(domain.AxisY))
}

func TestTracker_DisposeMakesPendingMessagesInert(t *testing.T) {
	tr := New()

	tr.Scroll(0, 10)
	tr, _ = tr.Update(frame(tr))
	pendingStop := stopped(tr)

	tr.Scroll(0, 20)
	pendingFrame := frame(tr)

	tr.Dispose()
	before := tr.State()

	require.NotPanics(t, func() {
		var cmd tea.Cmd
		tr, cmd = tr.Update(pendingFrame)
		require.Nil(t, cmd)
		tr, cmd = tr.Update(pendingStop)
		require.Nil(t, cmd)
	})
	require.Equal(t, before, tr.State())
	require.False(t, tr.Committed())
	require.Nil(t, tr.Scroll(0, 30))
}

func TestTracker_IgnoresOtherTrackers(t *testing.T) {
	a, b := New(), New()
	require.NotEqual(t, a.id, b.id)

	a.Scroll(0, 10)
	b.Scroll(0, 99)

	b, _ = b.Update(frame(a))
	require.False(t, b.Committed())
	require.Equal(t, 0.0, b.State().ScrollDistance.At(domain.AxisY))
}

func TestTracker_ScrollByUsesPendingTarget(t *testing.T) {
	tr := New()

	tr.ScrollBy(3)
	tr.ScrollBy(3)
	require.Equal(t, 6.0, tr.Target().At(domain.AxisY))

	tr, _ = tr.Update(frame(tr))
	require.Equal(t, 6.0, tr.State().ScrollDistance.At(domain.AxisY))
	tr.ScrollBy(-2)
	require.Equal(t, 4.0, tr.Target().At(domain.AxisY))
}

func TestTracker_TickCommandsDeliverMessages(t *testing.T) {
	tr := New(WithFrameInterval(time.Millisecond), WithStoppedScrollingTimeout(time.Millisecond))

	msg := tr.Scroll(0, 42)()
	require.IsType(t, FrameMsg{}, msg)

	tr, cmd := tr.Update(msg)
	require.True(t, tr.State().IsScrolling)

	msg = cmd()
	require.IsType(t, StoppedScrollingMsg{}, msg)

	tr, _ = tr.Update(msg)
	require.False(t, tr.State().IsScrolling)
	require.Equal(t, 42.0, tr.State().ScrollDistance.At(domain.AxisY))
}
