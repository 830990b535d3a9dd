package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	errx "github.com/convodesk/triage-core/internal/core/error"
	"github.com/convodesk/triage-core/internal/triage/prompts"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

// GeminiConfig holds everything needed to build the Gemini-backed provider.
type GeminiConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// Gemini adapts an Eino Gemini chat model to the Provider contract.
type Gemini struct {
	model   *gemini.ChatModel
	name    string
	timeout time.Duration
}

// NewGemini creates the Gemini provider from a fresh genai client.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating completion model")
		return nil, fmt.Errorf("error creating completion model: %w", err)
	}

	return &Gemini{model: chatModel, name: cfg.Model, timeout: cfg.Timeout}, nil
}

// Complete renders the template and invokes the model under a bounded
// deadline. Any failure, including an empty completion, is wrapped as
// provider unavailability.
func (g *Gemini) Complete(ctx context.Context, template string, vars map[string]any) (string, error) {
	rendered, err := prompts.Render(ctx, template, vars)
	if err != nil {
		return "", errx.WrapProvider(err)
	}

	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.model.Generate(cctx, []*schema.Message{schema.UserMessage(rendered)})
	if err != nil {
		logx.Error().Err(err).Str("model", g.name).Msg("Completion call failed")
		return "", errx.WrapProvider(err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", errx.WrapProvider(errors.New("empty completion"))
	}
	return out.Content, nil
}

var _ Provider = (*Gemini)(nil)
