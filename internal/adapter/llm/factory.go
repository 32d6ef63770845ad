package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvAutomaxMode is the environment variable name for mode selection.
	EnvAutomaxMode = "AUTOMAX_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewLLMClient creates an LLM client based on the AUTOMAX_MODE environment
// variable. If AUTOMAX_MODE=MOCK, returns a MockClient; otherwise returns a
// real Client.
func NewLLMClient(baseURL, apiKey string, timeout time.Duration) LLMClient {
	if os.Getenv(EnvAutomaxMode) == ModeMock {
		log.Println("AUTOMAX_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey, timeout)
}
