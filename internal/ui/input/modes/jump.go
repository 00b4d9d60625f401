package modes

import (
	"errors"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soettl/fluentui/internal/ui/input/types"
)

var errNotANumber = errors.New("not a row number")

// JumpMode reads a 1-based row number
type JumpMode struct {
	PromptMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		PromptMode: NewPromptMode(types.ModeJump, "jump", "Go to row: ", ti),
	}
}

func (m *JumpMode) Enter(ctx types.Context) []types.Action {
	m.PromptMode.Enter(ctx)
	if m.input != nil {
		m.input.Placeholder = "1"
		m.input.CharLimit = 10
		m.input.Validate = digitsOnly
	}
	return nil
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return m.PromptMode.HandleKey(msg, ctx)
}

func digitsOnly(s string) error {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return errNotANumber
		}
	}
	return nil
}
