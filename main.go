package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/agent"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/catalog"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/config"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/dealership"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/policy"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/repository"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/tools"
	handler "github.com/marcaguilaar/automax-whatsapp-bot/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting AutoMax assistant...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Ledger database: %s", cfg.DatabaseURL)
	log.Printf("Model: %s", cfg.Model)

	// Initialize appointment ledger
	ledger, err := repository.NewAppointmentLedger(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize appointment ledger: %v", err)
	}
	defer ledger.Close()

	// Initialize query engine over the sample catalog
	svc := dealership.New(catalog.Default(), ledger)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize tool registry
	registry := tools.NewRegistry(svc, policyEngine, cfg.ReadOnly)

	// Initialize LLM client and conversation agent
	llmClient := llm.NewLLMClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.LLMTimeout)
	chatAgent := agent.New(llmClient, registry, cfg.Model, cfg.MaxHistoryMessages)
	directory := agent.NewDirectory(chatAgent)

	// Create server
	server := handler.NewServer(directory, svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Chat API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Assistant stopped")
}
