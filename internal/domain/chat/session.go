package chat

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"lumina-server/concierge-api/internal/domain/llm"
)

// Action is a UI directive attached to an assistant turn.
type Action string

const (
	// ActionOpenCheckout tells the front end to open the checkout flow.
	ActionOpenCheckout Action = "checkout"
)

// Turn is one user-visible message in the conversation.
type Turn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Action    Action    `json:"action,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const greeting = "Good evening. I am Astra, your personal dining concierge. " +
	"I can modify your order, recommend pairings, or process your checkout."

// Session owns the transcript state for one conversation. The wire
// transcript (messages, including system preamble and tool exchanges) and
// the user-visible turns are kept separately; both are append-only.
type Session struct {
	ID string

	mu       sync.Mutex
	messages []llm.ChatMessage
	turns    []Turn
}

// NewSession constructs a session seeded with the persona preamble and the
// Astra greeting turn.
func NewSession(systemPrompt string) *Session {
	s := &Session{
		ID: fmt.Sprintf("sess_%s", uuid.NewString()),
		messages: []llm.ChatMessage{
			{Role: "system", Content: systemPrompt},
		},
	}
	s.turns = append(s.turns, Turn{
		ID:        newTurnID(),
		Role:      "assistant",
		Text:      greeting,
		Timestamp: time.Now(),
	})
	return s
}

// AppendMessage adds one message to the wire transcript.
func (s *Session) AppendMessage(msg llm.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the wire transcript.
func (s *Session) Messages() []llm.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// AppendTurn adds one user-visible turn and returns it.
func (s *Session) AppendTurn(role, text string, action Action) Turn {
	turn := Turn{
		ID:        newTurnID(),
		Role:      role,
		Text:      text,
		Action:    action,
		Timestamp: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
	return turn
}

// Turns returns a copy of the user-visible transcript.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func newTurnID() string {
	return fmt.Sprintf("turn_%s", uuid.NewString())
}

// Registry holds live sessions keyed by id. Sessions exist only for the
// lifetime of the process.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session built on the given system prompt.
func (r *Registry) Create(systemPrompt string) *Session {
	session := NewSession(systemPrompt)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session
}

// Find returns the session for the id, if present.
func (r *Registry) Find(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Dispose removes the session from the registry.
func (r *Registry) Dispose(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
