package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventViewportChanged  EventType = "ViewportChanged"
	EventItemsRendered    EventType = "ItemsRendered"
	EventRangeLoadStarted EventType = "RangeLoadStarted"
	EventRangeLoaded      EventType = "RangeLoaded"
	EventRangeLoadFailed  EventType = "RangeLoadFailed"
	EventSelectionChanged EventType = "SelectionChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ViewportChangedEvent is emitted when the tracker commits a new viewport state
type ViewportChangedEvent struct {
	State ViewportState
}

func (e ViewportChangedEvent) Type() EventType { return EventViewportChanged }

// ItemsRenderedEvent is emitted after every render of the list
type ItemsRenderedEvent struct {
	VisibleRange      ItemRange
	MaterializedRange ItemRange
	FocusedRange      *ItemRange
}

func (e ItemsRenderedEvent) Type() EventType { return EventItemsRendered }

// RangeLoadStartedEvent is emitted when the item loader requests a page
type RangeLoadStartedEvent struct {
	Range ItemRange
}

func (e RangeLoadStartedEvent) Type() EventType { return EventRangeLoadStarted }

// RangeLoadedEvent is emitted when a page of items is available in the store
type RangeLoadedEvent struct {
	Range ItemRange
}

func (e RangeLoadedEvent) Type() EventType { return EventRangeLoaded }

// RangeLoadFailedEvent is emitted when a page could not be loaded
type RangeLoadFailedEvent struct {
	Range ItemRange
	Err   error
}

func (e RangeLoadFailedEvent) Type() EventType { return EventRangeLoadFailed }

// SelectionChangedEvent is emitted when the selection model changes
type SelectionChangedEvent struct {
	Added   []int
	Removed []int
	Total   int
	Modal   bool
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the configuration file changed on disk
// and was reloaded successfully.
type ConfigChangedEvent struct {
	Path string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
