package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
)

func TestToggle(t *testing.T) {
	s := NewService(nil)
	require.False(t, s.IsModal())

	s.Toggle(4)
	require.True(t, s.IsIndexSelected(4))
	require.True(t, s.IsModal())
	require.Equal(t, 4, s.LastSelected())

	s.Toggle(4)
	require.False(t, s.IsIndexSelected(4))
	require.False(t, s.IsModal())
	require.Equal(t, 0, s.Count())
}

func TestSelectRange(t *testing.T) {
	s := NewService(nil)

	s.Toggle(10)
	s.SelectRange(7)
	require.Equal(t, []int{7, 8, 9, 10}, s.Selected())

	// The anchor stays on the toggled index
	s.SelectRange(12)
	require.Equal(t, []int{7, 8, 9, 10, 11, 12}, s.Selected())
}

func TestSelectRange_WithoutAnchor(t *testing.T) {
	s := NewService(nil)

	s.SelectRange(3)
	require.Equal(t, []int{3}, s.Selected())
	require.Equal(t, 3, s.LastSelected())
}

func TestSelectAllAndDeselectAll(t *testing.T) {
	s := NewService(nil)

	s.SelectAll(100)
	require.Equal(t, 100, s.Count())
	require.True(t, s.IsIndexSelected(99))
	require.False(t, s.IsIndexSelected(100))

	s.Truncate(50)
	require.Equal(t, 50, s.Count())

	s.DeselectAll()
	require.Equal(t, 0, s.Count())
	require.Equal(t, -1, s.LastSelected())
}

func TestSelectionChangedPublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	events := make(chan domain.SelectionChangedEvent, 4)
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		events <- e.(domain.SelectionChangedEvent)
	})

	s := NewService(bus)
	s.Toggle(2)

	select {
	case e := <-events:
		require.Equal(t, []int{2}, e.Added)
		require.Empty(t, e.Removed)
		require.Equal(t, 1, e.Total)
		require.True(t, e.Modal)
	case <-time.After(2 * time.Second):
		t.Fatal("no selection event")
	}
}
