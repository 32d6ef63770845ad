package agent

import (
	"context"
	"sync"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
)

// Directory maps external session ids to sessions. A session is created on
// first message and destroyed on explicit clear.
type Directory struct {
	agent *Agent

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewDirectory creates an empty session directory.
func NewDirectory(a *Agent) *Directory {
	return &Directory{
		agent:    a,
		sessions: make(map[string]*Session),
	}
}

// Submit routes the user text to the session with the given id, creating it
// on first use.
func (d *Directory) Submit(ctx context.Context, sessionID, userText string) string {
	return d.resolve(sessionID).Submit(ctx, userText)
}

// History returns a copy of the session's messages, or nil when the session
// does not exist.
func (d *Directory) History(sessionID string) []llm.ChatMessage {
	d.mu.Lock()
	s := d.sessions[sessionID]
	d.mu.Unlock()
	if s == nil {
		return nil
	}
	return s.History()
}

// Clear destroys the session. Reports whether it existed.
func (d *Directory) Clear(sessionID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.sessions[sessionID]
	delete(d.sessions, sessionID)
	return ok
}

func (d *Directory) resolve(sessionID string) *Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sessions[sessionID]
	if !ok {
		s = d.agent.NewSession()
		d.sessions[sessionID] = s
	}
	return s
}
