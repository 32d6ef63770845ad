package agent

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
)

// Session owns one customer's message history. Submissions against the same
// session are serialized; different sessions proceed in parallel.
type Session struct {
	agent *Agent

	mu      sync.Mutex
	history []llm.ChatMessage
}

// NewSession creates a session seeded with the system message.
func (a *Agent) NewSession() *Session {
	return &Session{
		agent:   a,
		history: []llm.ChatMessage{{Role: llm.RoleSystem, Content: SystemPrompt}},
	}
}

// Submit runs one turn and returns the assistant's reply. Any failure yields
// the fixed apology; the history then keeps the user message and nothing else
// from the turn, leaving the session usable for the next one.
func (s *Session) Submit(ctx context.Context, userText string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, updated, err := s.agent.runTurn(ctx, s.history, userText)
	s.history = updated
	if err != nil {
		log.Printf("chat turn failed: %v", err)
		return Apology
	}
	return reply
}

// History returns a copy of the session's messages, system message included.
func (s *Session) History() []llm.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}
