package conversation

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ThinkingText is shown in place of the pending turn's text
const ThinkingText = "AIDA is thinking..."

const timeLayout = "15:04"

var (
	userLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	assistantLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	timeStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pendingStyle        = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// RenderOptions controls how a turn is drawn
type RenderOptions struct {
	// Width wraps text; 0 disables wrapping
	Width int
	// SpinnerFrame is drawn before ThinkingText on the pending turn
	SpinnerFrame string
	// Markdown renders assistant text when set
	Markdown *glamour.TermRenderer
}

// Render draws one turn: a role label with its time, then the text
func Render(turn Turn, opts RenderOptions) string {
	label := assistantLabelStyle.Render("AIDA")
	if turn.Role == RoleUser {
		label = userLabelStyle.Render("You")
	}
	header := label + " " + timeStyle.Render(turn.CreatedAt.Format(timeLayout))

	var body string
	switch {
	case turn.Pending:
		frame := opts.SpinnerFrame
		if frame != "" {
			frame += " "
		}
		body = pendingStyle.Render(frame + ThinkingText)
	case turn.Role == RoleAssistant && opts.Markdown != nil:
		rendered, err := opts.Markdown.Render(turn.Text)
		if err != nil {
			body = wrapText(turn.Text, opts.Width)
		} else {
			body = strings.Trim(rendered, "\n")
		}
	default:
		body = wrapText(turn.Text, opts.Width)
	}

	return header + "\n" + body
}

// RenderAll draws turns in order separated by blank lines
func RenderAll(turns []Turn, opts RenderOptions) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		parts = append(parts, Render(t, opts))
	}
	return strings.Join(parts, "\n\n")
}

// wrapText wraps each line to maxWidth display cells, counting wide
// characters as two cells
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result, current strings.Builder
	width := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if width+w > maxWidth && width > 0 {
			result.WriteString(current.String())
			result.WriteString("\n")
			current.Reset()
			width = 0
		}
		current.WriteRune(r)
		width += w
	}
	result.WriteString(current.String())
	return result.String()
}
