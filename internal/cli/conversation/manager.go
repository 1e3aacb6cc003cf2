// Package conversation holds the state of one chat view: the ordered turns,
// the awaiting flag, the text input and how turns are drawn.
package conversation

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Fixed assistant texts
const (
	Greeting        = "Hello! I'm AIDA, your conference assistant. Ask me about the schedule, speakers, or anything about the event!"
	EmptyReply      = "I'm sorry, I couldn't process that request."
	ConnectionError = "Sorry, I'm having trouble connecting right now. Please try again."
)

var (
	// ErrAwaitingResponse is returned by Begin while a reply is outstanding
	ErrAwaitingResponse = errors.New("a response is already pending")
	// ErrUnmounted is returned by Begin after Unmount
	ErrUnmounted = errors.New("conversation is unmounted")
	// ErrEmptyMessage is returned by Begin for blank text
	ErrEmptyMessage = errors.New("message is empty")
)

// Turn is one entry of the conversation. Turns are never edited; the pending
// placeholder is replaced by a new turn when the reply arrives.
type Turn struct {
	ID        string
	Text      string
	Role      Role
	CreatedAt time.Time
	Pending   bool
}

// Manager owns the turns of a single view. At most one pending turn exists,
// and Awaiting is true exactly while it does.
type Manager struct {
	mu       sync.Mutex
	turns    []Turn
	awaiting bool
	mounted  bool
	revision uint64

	now   func() time.Time
	newID func() string
}

// Option configures a Manager
type Option func(*Manager)

// WithClock sets the time source for turn timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator sets the turn id source
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// NewManager creates a mounted conversation seeded with the greeting
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		mounted: true,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.turns = append(m.turns, m.turn(Greeting, RoleAssistant, false))
	return m
}

func (m *Manager) turn(text string, role Role, pending bool) Turn {
	return Turn{
		ID:        m.newID(),
		Text:      text,
		Role:      role,
		CreatedAt: m.now(),
		Pending:   pending,
	}
}

// Turns returns a copy of the turns, oldest first
func (m *Manager) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Awaiting reports whether a reply is outstanding
func (m *Manager) Awaiting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.awaiting
}

// Revision increases on every change to the turns. Views compare it to
// decide when to scroll to the newest turn.
func (m *Manager) Revision() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revision
}

// Mounted reports whether the view still owns this conversation
func (m *Manager) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

// Begin appends the user turn and a pending assistant turn, then marks the
// conversation as awaiting. The caller sends text to the backend and reports
// the outcome with Resolve.
func (m *Manager) Begin(text string) (Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case !m.mounted:
		return Turn{}, ErrUnmounted
	case m.awaiting:
		return Turn{}, ErrAwaitingResponse
	case strings.TrimSpace(text) == "":
		return Turn{}, ErrEmptyMessage
	}

	pending := m.turn("", RoleAssistant, true)
	m.turns = append(m.turns, m.turn(text, RoleUser, false), pending)
	m.awaiting = true
	m.revision++
	return pending, nil
}

// Resolve replaces the pending turn with the reply. A failed call or an empty
// reply gets a fixed apology instead. It returns false, changing nothing, if
// nothing is pending or the view has been unmounted.
func (m *Manager) Resolve(reply string, err error) (Turn, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted || !m.awaiting {
		return Turn{}, false
	}

	text := reply
	switch {
	case err != nil:
		text = ConnectionError
	case strings.TrimSpace(reply) == "":
		text = EmptyReply
	}

	resolved := m.turn(text, RoleAssistant, false)
	for i := len(m.turns) - 1; i >= 0; i-- {
		if m.turns[i].Pending {
			m.turns[i] = resolved
			break
		}
	}
	m.awaiting = false
	m.revision++
	return resolved, true
}

// Unmount detaches the view. Late replies are dropped.
func (m *Manager) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mounted = false
}
