package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/convodesk/triage-core/internal/core"
	"github.com/convodesk/triage-core/internal/triage/conversations"
	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/pipeline"
	"github.com/convodesk/triage-core/internal/triage/provider"
	logx "github.com/convodesk/triage-core/pkg/logger"
	pkgredis "github.com/convodesk/triage-core/pkg/redis"
)

// AppConfig defines all configurable parameters for the triage example,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	Provider provider.Config

	// Triage configs
	Generation   model.GenerationModelConfig
	Triage       model.TriageConfig
	Conversation model.ConversationConfig
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	logx.Init(logx.LoggerOpts{
		Environment: core.ParseEnvironment(os.Getenv("ENVIRONMENT")),
	})

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}
	history := conversations.NewRedisHistoryStore(rdb, ttl)

	llm, err := provider.New(ctx, envCfg.Provider, envCfg.Generation, envCfg.Triage)
	if err != nil {
		log.Fatalf("Failed to initialise LLM provider: %v", err)
	}

	runner, err := pipeline.Build(ctx, pipeline.Config{
		Provider: llm,
		Triage:   envCfg.Triage,
	})
	if err != nil {
		log.Fatalf("Failed to build triage pipeline: %v", err)
	}

	testMessages := []struct {
		description string
		message     string
	}{
		{
			description: "Sales inquiry",
			message:     "What's the pricing for your enterprise plan?",
		},
		{
			description: "Support request with an order reference",
			message:     "My order #12345 arrived damaged, can you help?",
		},
		{
			description: "Urgent billing failure",
			message:     "This is ridiculous!!! I've been charged twice!",
		},
		{
			description: "Friendly follow-up",
			message:     "Thanks, that was really helpful!",
		},
	}

	conversationID := "demo-conversation-001"

	for i, test := range testMessages {
		fmt.Printf("\nTest %d: %s\n", i+1, test.description)
		fmt.Printf("Message: %q\n", test.message)

		if err := history.Append(ctx, conversationID, model.HistoryMessage{
			Sender:  model.SenderUser,
			Content: test.message,
		}); err != nil {
			log.Fatalf("Failed to record user turn: %v", err)
		}

		window, err := history.Window(ctx, conversationID, envCfg.Conversation.MaxTurns)
		if err != nil {
			log.Fatalf("Failed to load conversation window: %v", err)
		}
		// Drop the just-appended turn; the window may come back empty if
		// the conversation key expired in between.
		if n := len(window); n > 0 {
			window = window[:n-1]
		}

		res, err := runner.Invoke(ctx, model.TriageInput{
			ConversationID: conversationID,
			Message:        test.message,
			History:        window,
		})
		if err != nil {
			log.Fatalf("Failed to triage message %d: %v", i+1, err)
		}

		if err := history.Append(ctx, conversationID, model.HistoryMessage{
			Sender:  model.SenderAgent,
			Content: res.Response,
		}); err != nil {
			log.Fatalf("Failed to record agent turn: %v", err)
		}

		fmt.Printf("Intent: %s\n", res.Intent)
		if res.ClassificationReason != "" {
			fmt.Printf("Reason: %s\n", res.ClassificationReason)
		}
		fmt.Printf("Sentiment: %.2f  Language: %s\n", res.SentimentScore, res.Language)
		if res.OrderNumber != "" {
			fmt.Printf("Order number: %s\n", res.OrderNumber)
		}
		if res.RequiresEscalation {
			fmt.Printf("Escalated: %s\n", res.EscalationReason)
		}
		fmt.Printf("Response (valid=%v): %s\n", res.ResponseValid, res.Response)
		fmt.Println("────────────────────────────────────────────")

		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println("\nAll triage runs completed.")
}
