package types

// Focus actions
type FocusAction struct {
	Delta int // rows to move the focus by
}

func (a FocusAction) Type() string { return "focus" }

type FocusToAction struct {
	Index int // -1 for the last row
}

func (a FocusToAction) Type() string { return "focus_to" }

// Scroll actions
type ScrollAction struct {
	Lines float64
}

func (a ScrollAction) Type() string { return "scroll" }

type PageAction struct {
	Pages     float64 // fraction of a viewport, negative scrolls up
	MoveFocus bool
}

func (a PageAction) Type() string { return "page" }

// Selection actions
type ToggleSelectionAction struct {
	Index int // -1 for the focused row
}

func (a ToggleSelectionAction) Type() string { return "toggle_selection" }

type ExtendSelectionAction struct {
	Delta int
}

func (a ExtendSelectionAction) Type() string { return "extend_selection" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// View actions
type ToggleCompactAction struct{}

func (a ToggleCompactAction) Type() string { return "toggle_compact" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type InspectFrameAction struct{}

func (a InspectFrameAction) Type() string { return "inspect_frame" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
