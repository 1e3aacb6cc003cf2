package conversation

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxInputLength is the longest message the input accepts, in characters
const MaxInputLength = 500

const inputPlaceholder = "Ask AIDA about the conference..."

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Input is the message text field. It never talks to the network; Submit
// hands the text to the caller.
type Input struct {
	model textinput.Model
}

// NewInput creates a focused, empty input
func NewInput() Input {
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = MaxInputLength
	ti.Prompt = ""
	ti.Width = 80
	ti.Focus()
	return Input{model: ti}
}

// Update feeds a key or blink message to the field
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// Value returns the current text
func (i Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the text, cutting it to MaxInputLength characters
func (i *Input) SetValue(s string) {
	if r := []rune(s); len(r) > MaxInputLength {
		s = string(r[:MaxInputLength])
	}
	i.model.SetValue(s)
}

// SetWidth sets the visible width
func (i *Input) SetWidth(w int) {
	i.model.Width = w
}

// CanSubmit reports whether Submit would emit text
func (i Input) CanSubmit(disabled bool) bool {
	return !disabled && strings.TrimSpace(i.model.Value()) != ""
}

// Submit returns the trimmed text and clears the field. It does nothing
// while disabled or when the text is blank.
func (i *Input) Submit(disabled bool) (string, bool) {
	if !i.CanSubmit(disabled) {
		return "", false
	}
	text := strings.TrimSpace(i.model.Value())
	i.model.Reset()
	return text, true
}

// View draws the field. A disabled field shows a waiting hint.
func (i Input) View(disabled bool) string {
	if disabled {
		return disabledStyle.Render("> waiting for AIDA...")
	}
	return promptStyle.Render("> ") + i.model.View()
}
