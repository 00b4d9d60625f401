package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soettl/fluentui/internal/ui/input/types"
)

// PromptMode reads one line in the status bar and hands it back as a
// SubmitTextAction tagged with its mode. Editing keys go to the text input.
type PromptMode struct {
	mode   types.Mode
	name   string
	prompt string
	input  *textinput.Model
}

func NewPromptMode(mode types.Mode, name, prompt string, ti *textinput.Model) PromptMode {
	return PromptMode{mode: mode, name: name, prompt: prompt, input: ti}
}

func (m PromptMode) Name() string {
	return m.name
}

// Prompt is shown in front of the text input
func (m PromptMode) Prompt() string {
	return m.prompt
}

func (m PromptMode) Enter(ctx types.Context) []types.Action {
	if m.input != nil {
		m.input.Reset()
		m.input.Prompt = m.prompt
		m.input.Focus()
	}
	return nil
}

func (m PromptMode) Exit(ctx types.Context) []types.Action {
	if m.input != nil {
		m.input.Blur()
		m.input.Reset()
	}
	return nil
}

func (m PromptMode) value() string {
	if m.input == nil {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

func (m PromptMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return m.cancel(), true
	case "backspace":
		// backspace on an empty prompt closes it
		if m.value() == "" {
			return m.cancel(), true
		}
		return nil, false
	case "enter":
		text := m.value()
		if text == "" {
			return m.cancel(), true
		}
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		return nil, false
	}
}

func (m PromptMode) cancel() []types.Action {
	return []types.Action{
		types.CancelTextAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}
}
