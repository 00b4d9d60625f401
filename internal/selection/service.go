package selection

import (
	"slices"

	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
)

// State holds the selection state
type State struct {
	Selected     map[int]bool
	LastSelected int
}

// Service handles index based selection. It is used from the UI goroutine only;
// changes are published as SelectionChanged events.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Selected:     make(map[int]bool),
			LastSelected: -1,
		},
		bus: bus,
	}
}

// Toggle toggles selection at index
func (s *Service) Toggle(index int) {
	if index < 0 {
		return
	}

	var added, removed []int

	if s.state.Selected[index] {
		delete(s.state.Selected, index)
		removed = append(removed, index)
	} else {
		s.state.Selected[index] = true
		added = append(added, index)
	}

	s.state.LastSelected = index
	s.publish(added, removed)
}

// SelectRange selects every index from the last selected one to toIndex.
// Without an anchor only toIndex is selected.
func (s *Service) SelectRange(toIndex int) {
	if toIndex < 0 {
		return
	}

	start, end := s.state.LastSelected, toIndex
	if start < 0 {
		start = toIndex
	}
	if start > end {
		start, end = end, start
	}

	var added []int
	for i := start; i <= end; i++ {
		if !s.state.Selected[i] {
			s.state.Selected[i] = true
			added = append(added, i)
		}
	}

	if s.state.LastSelected < 0 {
		s.state.LastSelected = toIndex
	}

	if len(added) > 0 {
		s.publish(added, nil)
	}
}

// SelectAll selects every index below count
func (s *Service) SelectAll(count int) {
	var added []int
	for i := 0; i < count; i++ {
		if !s.state.Selected[i] {
			s.state.Selected[i] = true
			added = append(added, i)
		}
	}

	if len(added) > 0 {
		s.publish(added, nil)
	}
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	removed := s.Selected()

	s.state.Selected = make(map[int]bool)
	s.state.LastSelected = -1

	if len(removed) > 0 {
		s.publish(nil, removed)
	}
}

// Truncate drops selected indices at or beyond count
func (s *Service) Truncate(count int) {
	var removed []int
	for i := range s.state.Selected {
		if i >= count {
			delete(s.state.Selected, i)
			removed = append(removed, i)
		}
	}
	if s.state.LastSelected >= count {
		s.state.LastSelected = -1
	}

	if len(removed) > 0 {
		slices.Sort(removed)
		s.publish(nil, removed)
	}
}

// IsIndexSelected checks if an index is selected
func (s *Service) IsIndexSelected(index int) bool {
	return s.state.Selected[index]
}

// IsModal reports whether the list is in selection mode, which shows the check
// column on every row
func (s *Service) IsModal() bool {
	return len(s.state.Selected) > 0
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// Selected returns the selected indices in ascending order
func (s *Service) Selected() []int {
	selected := make([]int, 0, len(s.state.Selected))
	for i := range s.state.Selected {
		selected = append(selected, i)
	}
	slices.Sort(selected)
	return selected
}

// LastSelected returns the anchor for range selection, or -1
func (s *Service) LastSelected() int {
	return s.state.LastSelected
}

func (s *Service) publish(added, removed []int) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(domain.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Selected),
		Modal:   s.IsModal(),
	})
}
