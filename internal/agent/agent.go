// Package agent orchestrates the conversation with the model provider: the
// two-phase tool-calling exchange, history trimming and per-session state.
package agent

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/tools"
)

// Sampling settings for both provider calls of a turn.
const (
	temperature    = 0.7
	maxTokens      = 1000
	toolChoiceAuto = "auto"
)

// DefaultMaxHistory is the default number of retained messages, not counting
// the system message.
const DefaultMaxHistory = 20

// Agent runs conversation turns. It is stateless and shared by every session;
// history lives in Session values or with the caller.
type Agent struct {
	client     llm.LLMClient
	registry   *tools.Registry
	model      string
	maxHistory int
}

// New creates an agent. maxHistory caps retained messages per session, the
// system message excluded; values below 1 fall back to DefaultMaxHistory.
func New(client llm.LLMClient, registry *tools.Registry, model string, maxHistory int) *Agent {
	if maxHistory < 1 {
		maxHistory = DefaultMaxHistory
	}
	return &Agent{
		client:     client,
		registry:   registry,
		model:      model,
		maxHistory: maxHistory,
	}
}

// ChatWithHistory runs one turn in stateless mode: the caller owns the
// history and receives the updated copy back. An empty history is seeded with
// the system message. On failure the returned history keeps the user message
// and nothing else from the turn, and the reply is the fixed apology.
func (a *Agent) ChatWithHistory(ctx context.Context, history []llm.ChatMessage, userText string) (string, []llm.ChatMessage) {
	if len(history) == 0 {
		history = []llm.ChatMessage{{Role: llm.RoleSystem, Content: SystemPrompt}}
	}
	reply, updated, err := a.runTurn(ctx, history, userText)
	if err != nil {
		log.Printf("chat turn failed: %v", err)
		return Apology, updated
	}
	return reply, updated
}

// runTurn executes the full turn against a snapshot of the given history and
// returns the history to commit. On error the returned history contains the
// prior messages plus only the user append; partial assistant or tool
// messages are discarded.
func (a *Agent) runTurn(ctx context.Context, history []llm.ChatMessage, userText string) (string, []llm.ChatMessage, error) {
	committed := append(slices.Clone(history), llm.ChatMessage{Role: llm.RoleUser, Content: userText})
	committed = a.trim(committed)

	work := slices.Clone(committed)

	temp := temperature
	tokens := maxTokens
	resp, err := a.client.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
		Model:       a.model,
		Messages:    work,
		Tools:       a.registry.Schemas(),
		ToolChoice:  toolChoiceAuto,
		Temperature: &temp,
		MaxTokens:   &tokens,
	})
	if err != nil {
		return "", committed, fmt.Errorf("provider call failed: %w", err)
	}
	msg, err := firstMessage(resp)
	if err != nil {
		return "", committed, err
	}

	var reply string
	if len(msg.ToolCalls) > 0 {
		work = append(work, *msg)

		// Dispatch in the order the provider emitted the calls, tagging each
		// result with the id of the request that produced it.
		for _, call := range msg.ToolCalls {
			payload, err := a.registry.Dispatch(ctx, call.Function.Name, []byte(call.Function.Arguments))
			if err != nil {
				return "", committed, fmt.Errorf("tool %s failed: %w", call.Function.Name, err)
			}
			work = append(work, llm.ChatMessage{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    string(payload),
			})
		}

		// Second phase: tools omitted, results are already inlined.
		final, err := a.client.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
			Model:       a.model,
			Messages:    work,
			Temperature: &temp,
			MaxTokens:   &tokens,
		})
		if err != nil {
			return "", committed, fmt.Errorf("final provider call failed: %w", err)
		}
		finalMsg, err := firstMessage(final)
		if err != nil {
			return "", committed, err
		}
		reply = finalMsg.Content
	} else {
		reply = msg.Content
	}

	work = append(work, llm.ChatMessage{Role: llm.RoleAssistant, Content: reply})
	work = a.trim(work)
	return reply, work, nil
}

// trim retains the system message plus at most maxHistory most-recent
// messages, never reordering and never evicting the system message.
func (a *Agent) trim(history []llm.ChatMessage) []llm.ChatMessage {
	if len(history) <= a.maxHistory+1 {
		return history
	}
	trimmed := make([]llm.ChatMessage, 0, a.maxHistory+1)
	trimmed = append(trimmed, history[0])
	trimmed = append(trimmed, history[len(history)-a.maxHistory:]...)
	return trimmed
}

func firstMessage(resp *llm.ChatCompletionResponse) (*llm.ChatMessage, error) {
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return nil, fmt.Errorf("provider returned no choices")
	}
	return resp.Choices[0].Message, nil
}
