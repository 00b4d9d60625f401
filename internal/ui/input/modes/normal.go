package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soettl/fluentui/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.FocusAction{Delta: -1}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.FocusAction{Delta: 1}}, true

	case key.Matches(msg, k.PageUp):
		return []types.Action{types.PageAction{Pages: -1, MoveFocus: true}}, true

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.PageAction{Pages: 1, MoveFocus: true}}, true

	case key.Matches(msg, k.HalfPageUp):
		// Scrolls without moving the focus, which stays materialized
		return []types.Action{types.PageAction{Pages: -0.5}}, true

	case key.Matches(msg, k.HalfPageDown):
		return []types.Action{types.PageAction{Pages: 0.5}}, true

	case key.Matches(msg, k.Top):
		return []types.Action{types.FocusToAction{Index: 0}}, true

	case key.Matches(msg, k.Bottom):
		return []types.Action{types.FocusToAction{Index: -1}}, true

	case key.Matches(msg, k.Toggle):
		return []types.Action{types.ToggleSelectionAction{Index: -1}}, true

	case key.Matches(msg, k.ExtendUp):
		return []types.Action{types.ExtendSelectionAction{Delta: -1}}, true

	case key.Matches(msg, k.ExtendDown):
		return []types.Action{types.ExtendSelectionAction{Delta: 1}}, true

	case key.Matches(msg, k.SelectAll):
		// Toggle select all
		if ctx.SelectedCount() == ctx.ItemCount() && ctx.ItemCount() > 0 {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, k.ClearAll):
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, false

	case key.Matches(msg, k.Compact):
		return []types.Action{types.ToggleCompactAction{}}, true

	case key.Matches(msg, k.Jump):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case key.Matches(msg, k.Inspect):
		return []types.Action{types.InspectFrameAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
