package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/lvyanru/aida-chat/internal/cli/conversation"
	"github.com/lvyanru/aida-chat/internal/cli/types"
)

// UI configuration constants
const (
	defaultViewportWidth  = 100
	defaultViewportHeight = 30
	defaultWindowWidth    = 100
	defaultWindowHeight   = 40
	headerHeightReserved  = 2
	inputHeightReserved   = 3
	minContentHeight      = 5
	title                 = "AIDA Conference Assistant"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	spinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// Sender delivers one message to the chat endpoint
type Sender interface {
	Chat(ctx context.Context, message string) (*types.ChatResponse, error)
}

// ChatProgram encapsulates the chat TUI program
type ChatProgram struct {
	model chatModel
}

// NewChatProgram creates a new chat program instance
func NewChatProgram(sender Sender) *ChatProgram {
	return &ChatProgram{model: initialModel(sender, conversation.NewManager())}
}

// Run starts the chat TUI program
func (p *ChatProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	final, err := program.Run()
	if m, ok := final.(chatModel); ok {
		m.manager.Unmount()
	}
	return err
}

// chatModel is the Bubble Tea model holding the chat screen state
type chatModel struct {
	sender  Sender
	manager *conversation.Manager

	input       conversation.Input
	contentView viewport.Model
	spinner     spinner.Model
	markdown    *glamour.TermRenderer

	// revision last drawn into the viewport
	revision uint64

	width  int
	height int
}

func initialModel(sender Sender, manager *conversation.Manager) chatModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinStyle

	m := chatModel{
		sender:      sender,
		manager:     manager,
		input:       conversation.NewInput(),
		contentView: viewport.New(defaultViewportWidth, defaultViewportHeight),
		spinner:     sp,
		width:       defaultWindowWidth,
		height:      defaultWindowHeight,
	}
	m.markdown = newMarkdownRenderer(defaultViewportWidth)
	m.refreshContent()
	return m
}

// newMarkdownRenderer returns nil when glamour cannot be set up; turns are
// then drawn as plain wrapped text
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// Init initializes the model (Bubble Tea interface)
func (m chatModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// replyMsg carries the outcome of one Sender.Chat call
type replyMsg struct {
	text string
	err  error
}

// Update processes messages and updates the model (Bubble Tea interface)
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := m.handleKeyPress(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return m, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case replyMsg:
		m.manager.Resolve(msg.text, msg.err)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.manager.Awaiting() {
			m.redraw()
		}
	}

	if !m.manager.Awaiting() {
		cmds = append(cmds, m.input.Update(msg))
	}

	if m.manager.Revision() != m.revision {
		m.refreshContent()
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input. handled is true when the key must
// not reach the input field.
func (m *chatModel) handleKeyPress(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.manager.Unmount()
		return tea.Quit, true

	case tea.KeyEnter:
		return m.submit(), true

	case tea.KeyUp:
		m.contentView.LineUp(1)
		return nil, true

	case tea.KeyDown:
		m.contentView.LineDown(1)
		return nil, true

	case tea.KeyPgUp:
		m.contentView.ViewUp()
		return nil, true

	case tea.KeyPgDown:
		m.contentView.ViewDown()
		return nil, true
	}
	return nil, false
}

// submit starts a turn for the current input and returns the command that
// sends it
func (m *chatModel) submit() tea.Cmd {
	text, ok := m.input.Submit(m.manager.Awaiting())
	if !ok {
		return nil
	}
	if _, err := m.manager.Begin(text); err != nil {
		return nil
	}
	return m.send(text)
}

func (m *chatModel) send(text string) tea.Cmd {
	sender := m.sender
	return func() tea.Msg {
		resp, err := sender.Chat(context.Background(), text)
		if err != nil {
			return replyMsg{err: err}
		}
		return replyMsg{text: resp.Response}
	}
}

// handleWindowResize handles window size changes
func (m *chatModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - headerHeightReserved - inputHeightReserved
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	m.contentView.Width = msg.Width
	m.contentView.Height = contentHeight
	m.input.SetWidth(msg.Width - 3)
	if m.markdown != nil {
		m.markdown = newMarkdownRenderer(msg.Width)
	}

	m.refreshContent()
}

// refreshContent redraws the transcript and scrolls to the newest turn
func (m *chatModel) refreshContent() {
	m.redraw()
	m.contentView.GotoBottom()
	m.revision = m.manager.Revision()
}

// redraw replaces the transcript without moving the scroll position
func (m *chatModel) redraw() {
	m.contentView.SetContent(conversation.RenderAll(m.manager.Turns(), conversation.RenderOptions{
		Width:        m.width,
		SpinnerFrame: m.spinner.View(),
		Markdown:     m.markdown,
	}))
}

// View renders the UI (Bubble Tea interface)
func (m chatModel) View() string {
	awaiting := m.manager.Awaiting()

	help := dimStyle.Render("Enter send • ↑↓ scroll • Esc quit")
	if awaiting {
		help = dimStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), conversation.ThinkingText))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		m.contentView.View(),
		"",
		m.input.View(awaiting),
		help,
	)
}
