package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MockClient is a mock implementation of LLMClient for offline runs and tests.
// When tools are offered it requests an inventory search, so the full
// two-phase tool loop is exercised without a real provider.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements LLMClient interface.
var _ LLMClient = (*MockClient)(nil)

// CreateChatCompletion returns a mock response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	msg := m.generateMockMessage(req)
	finishReason := "stop"
	if len(msg.ToolCalls) > 0 {
		finishReason = "tool_calls"
	}

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index:        0,
				Message:      msg,
				FinishReason: finishReason,
			},
		},
		Usage: &Usage{
			PromptTokens:     m.estimateTokens(req),
			CompletionTokens: len(msg.Content) / 4,
			TotalTokens:      m.estimateTokens(req) + len(msg.Content)/4,
		},
	}, nil
}

func (m *MockClient) generateMockMessage(req *ChatCompletionRequest) *ChatMessage {
	// First phase: tools offered and the last message is from the user.
	last := lastMessage(req.Messages)
	if len(req.Tools) > 0 && last != nil && last.Role == RoleUser {
		return &ChatMessage{
			Role: RoleAssistant,
			ToolCalls: []ToolCall{
				{
					ID:   "call_" + uuid.New().String()[:8],
					Type: "function",
					Function: ToolCallFunction{
						Name:      "searchInventory",
						Arguments: "{}",
					},
				},
			},
		}
	}

	// Second phase: tool results already inlined in the history.
	if last != nil && last.Role == RoleTool {
		return &ChatMessage{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("[MOCK] Resumen de resultados de herramienta: %s", truncate(last.Content, 200)),
		}
	}

	var lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			lastUserMessage = req.Messages[i].Content
			break
		}
	}
	if lastUserMessage == "" {
		return &ChatMessage{Role: RoleAssistant, Content: "[MOCK] This is a mock response from the LLM client."}
	}
	return &ChatMessage{
		Role:    RoleAssistant,
		Content: fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserMessage, 100)),
	}
}

func lastMessage(messages []ChatMessage) *ChatMessage {
	if len(messages) == 0 {
		return nil
	}
	return &messages[len(messages)-1]
}

// estimateTokens provides a rough token count estimate.
func (m *MockClient) estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
