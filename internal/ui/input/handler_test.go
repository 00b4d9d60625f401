package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/soettl/fluentui/internal/ui/input/modes"
	"github.com/soettl/fluentui/internal/ui/input/types"
)

type fakeContext struct {
	focused  int
	count    int
	selected int
}

func (c fakeContext) FocusedIndex() int { return c.focused }
func (c fakeContext) ItemCount() int { return c.count }
func (c fakeContext) HasSelection() bool { return c.selected > 0 }
func (c fakeContext) SelectedCount() int { return c.selected }
func (c fakeContext) IsScrolling() bool { return false }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeKeys(t *testing.T) {
	h := New(modes.DefaultKeyMap())
	ctx := fakeContext{count: 100}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"j", runes("j"), types.FocusAction{Delta: 1}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, types.FocusAction{Delta: -1}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, types.PageAction{Pages: 1, MoveFocus: true}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, types.PageAction{Pages: 0.5}},
		{"G", runes("G"), types.FocusToAction{Index: -1}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, types.ToggleSelectionAction{Index: -1}},
		{"a", runes("a"), types.SelectAllAction{}},
		{"c", runes("c"), types.ToggleCompactAction{}},
		{"q", runes("q"), types.QuitAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Equal(t, []types.Action{tt.want}, actions)
		})
	}
}

func TestSelectAllTogglesWhenEverythingSelected(t *testing.T) {
	h := New(modes.DefaultKeyMap())

	actions, _ := h.HandleKey(runes("a"), fakeContext{count: 3, selected: 3})
	require.Equal(t, []types.Action{types.DeselectAllAction{}}, actions)
}

func TestEscWithoutSelectionIsNotConsumed(t *testing.T) {
	h := New(modes.DefaultKeyMap())

	actions, cmd := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{count: 3})
	require.Empty(t, actions)
	require.Nil(t, cmd)
}

func TestJumpMode(t *testing.T) {
	h := New(modes.DefaultKeyMap())
	ctx := fakeContext{count: 20000}

	_, cmd := h.HandleKey(runes(":"), ctx)
	require.NotNil(t, cmd)
	require.Equal(t, types.ModeJump, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	h.HandleKey(runes("4"), ctx)
	actions, _ := h.HandleKey(runes("2"), ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "42"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Equal(t, []types.Action{types.SubmitTextAction{Text: "42", Mode: types.ModeJump}}, actions)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
	require.Nil(t, h.TextInput())
}

func TestJumpModeCancel(t *testing.T) {
	h := New(modes.DefaultKeyMap())
	ctx := fakeContext{count: 10}

	h.HandleKey(runes(":"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestJumpModeEmptyPromptCloses(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(modes.DefaultKeyMap())
			ctx := fakeContext{count: 10}

			h.HandleKey(runes(":"), ctx)
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
			require.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestJumpModeBackspaceEditsText(t *testing.T) {
	h := New(modes.DefaultKeyMap())
	ctx := fakeContext{count: 100}

	h.HandleKey(runes(":"), ctx)
	h.HandleKey(runes("1"), ctx)
	h.HandleKey(runes("2"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "1"}}, actions)
	require.Equal(t, types.ModeJump, h.CurrentMode())
}
