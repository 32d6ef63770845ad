package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/catalog"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/dealership"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/policy"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/repository"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/tools"
)

// scriptedClient replays a fixed sequence of provider responses and records
// every request it receives.
type scriptedClient struct {
	script   []scriptStep
	requests []*llm.ChatCompletionRequest
}

type scriptStep struct {
	resp *llm.ChatCompletionResponse
	err  error
}

func (c *scriptedClient) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	c.requests = append(c.requests, req)
	if len(c.script) == 0 {
		return nil, errors.New("script exhausted")
	}
	step := c.script[0]
	c.script = c.script[1:]
	return step.resp, step.err
}

func replyWith(content string) scriptStep {
	return scriptStep{resp: &llm.ChatCompletionResponse{
		Choices: []llm.Choice{{Message: &llm.ChatMessage{Role: llm.RoleAssistant, Content: content}}},
	}}
}

func callTool(id, name, args string) scriptStep {
	return scriptStep{resp: &llm.ChatCompletionResponse{
		Choices: []llm.Choice{{Message: &llm.ChatMessage{
			Role: llm.RoleAssistant,
			ToolCalls: []llm.ToolCall{{
				ID:   id,
				Type: "function",
				Function: llm.ToolCallFunction{Name: name, Arguments: args},
			}},
		}}},
	}}
}

func newTestAgent(t *testing.T, client llm.LLMClient, maxHistory int) *Agent {
	t.Helper()
	ledger, err := repository.NewAppointmentLedger(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	eng, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)

	registry := tools.NewRegistry(dealership.New(catalog.Default(), ledger), eng, false)
	return New(client, registry, "test-model", maxHistory)
}

func TestSubmitDirectReply(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{replyWith("¡Hola! ¿En qué puedo ayudarte?")}}
	session := newTestAgent(t, client, 0).NewSession()

	reply := session.Submit(context.Background(), "hola")
	assert.Equal(t, "¡Hola! ¿En qué puedo ayudarte?", reply)

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, llm.RoleSystem, history[0].Role)
	assert.Equal(t, SystemPrompt, history[0].Content)
	assert.Equal(t, llm.RoleUser, history[1].Role)
	assert.Equal(t, "hola", history[1].Content)
	assert.Equal(t, llm.RoleAssistant, history[2].Role)

	// The single call advertises the tool catalog.
	require.Len(t, client.requests, 1)
	assert.Len(t, client.requests[0].Tools, 6)
	assert.Equal(t, "auto", client.requests[0].ToolChoice)
	require.NotNil(t, client.requests[0].Temperature)
	assert.Equal(t, 0.7, *client.requests[0].Temperature)
}

func TestSubmitToolCallRoundTrip(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		callTool("call-abc", "searchInventory", `{"budget":"economico"}`),
		replyWith("Tenemos varias opciones económicas disponibles."),
	}}
	session := newTestAgent(t, client, 0).NewSession()

	reply := session.Submit(context.Background(), "busco algo barato")
	assert.Equal(t, "Tenemos varias opciones económicas disponibles.", reply)

	require.Len(t, client.requests, 2)
	// The second call inlines the tool results and offers no tools.
	second := client.requests[1]
	assert.Empty(t, second.Tools)
	assert.Nil(t, second.ToolChoice)

	msgs := second.Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, llm.RoleAssistant, msgs[2].Role)
	require.Len(t, msgs[2].ToolCalls, 1)
	assert.Equal(t, llm.RoleTool, msgs[3].Role)
	assert.Equal(t, "call-abc", msgs[3].ToolCallID)

	// The inlined payload is the real economy search result.
	var result dealership.SearchResult
	require.NoError(t, json.Unmarshal([]byte(msgs[3].Content), &result))
	require.True(t, result.Success)
	require.NotZero(t, result.TotalFound)
	for _, car := range result.Cars {
		assert.Less(t, car.Price, 30000.0)
	}

	// The whole exchange is committed, reply included.
	history := session.History()
	require.Len(t, history, 5)
	assert.Equal(t, llm.RoleTool, history[3].Role)
	assert.Equal(t, reply, history[4].Content)
}

func TestSubmitProviderFailure(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{err: errors.New("connection refused")},
		replyWith("Ahora sí, ¿en qué te ayudo?"),
	}}
	session := newTestAgent(t, client, 0).NewSession()

	reply := session.Submit(context.Background(), "hola")
	assert.Equal(t, Apology, reply)

	// Only the user message survives the failed turn.
	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[1].Role)

	// The session stays usable.
	reply = session.Submit(context.Background(), "sigues ahí?")
	assert.Equal(t, "Ahora sí, ¿en qué te ayudo?", reply)
	assert.Len(t, session.History(), 4)
}

func TestSubmitSecondCallFailureDiscardsToolMessages(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		callTool("call-1", "getBusinessInfo", `{"infoType":"hours"}`),
		{err: errors.New("timeout")},
	}}
	session := newTestAgent(t, client, 0).NewSession()

	reply := session.Submit(context.Background(), "a qué hora abren?")
	assert.Equal(t, Apology, reply)

	// Neither the assistant tool-call message nor the tool result is kept.
	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[1].Role)
}

func TestSubmitEmptyChoices(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatCompletionResponse{}},
	}}
	session := newTestAgent(t, client, 0).NewSession()

	reply := session.Submit(context.Background(), "hola")
	assert.Equal(t, Apology, reply)
}

func TestHistoryTrimmingKeepsSystemAndRecent(t *testing.T) {
	var script []scriptStep
	for i := 0; i < 15; i++ {
		script = append(script, replyWith(fmt.Sprintf("respuesta %d", i)))
	}
	client := &scriptedClient{script: script}
	session := newTestAgent(t, client, 6).NewSession()

	for i := 0; i < 15; i++ {
		session.Submit(context.Background(), fmt.Sprintf("mensaje %d", i))
	}

	history := session.History()
	require.Len(t, history, 7)
	assert.Equal(t, llm.RoleSystem, history[0].Role)
	// The tail is the most recent exchanges in order.
	assert.Equal(t, "mensaje 12", history[1].Content)
	assert.Equal(t, "respuesta 12", history[2].Content)
	assert.Equal(t, "mensaje 14", history[5].Content)
	assert.Equal(t, "respuesta 14", history[6].Content)
}

func TestChatWithHistorySeedsSystemMessage(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{replyWith("claro")}}
	agent := newTestAgent(t, client, 0)

	reply, updated := agent.ChatWithHistory(context.Background(), nil, "hola")
	assert.Equal(t, "claro", reply)
	require.Len(t, updated, 3)
	assert.Equal(t, SystemPrompt, updated[0].Content)
}

func TestChatWithHistoryDoesNotMutateInput(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{replyWith("ok"), replyWith("ok de nuevo")}}
	agent := newTestAgent(t, client, 0)

	_, first := agent.ChatWithHistory(context.Background(), nil, "uno")
	snapshot := len(first)

	_, second := agent.ChatWithHistory(context.Background(), first, "dos")
	assert.Len(t, first, snapshot)
	assert.Len(t, second, snapshot+2)
}

func TestChatWithHistoryFailureReturnsApology(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{{err: errors.New("boom")}}}
	agent := newTestAgent(t, client, 0)

	reply, updated := agent.ChatWithHistory(context.Background(), nil, "hola")
	assert.Equal(t, Apology, reply)
	require.Len(t, updated, 2)
	assert.Equal(t, llm.RoleUser, updated[1].Role)
}
