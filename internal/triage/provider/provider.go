// Package provider abstracts the LLM completion service the pipeline calls.
// The pipeline treats every failure uniformly as unavailability and takes
// its deterministic fallback path; no retries happen here.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/convodesk/triage-core/internal/triage/model"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

// Provider is the single call contract the pipeline depends on: fill the
// template with the given variables and return the completion text.
type Provider interface {
	Complete(ctx context.Context, template string, vars map[string]any) (string, error)
}

// Config selects and configures the concrete provider.
type Config struct {
	Name    string `envconfig:"LLM_PROVIDER" default:"mock"`
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
}

// New routes to a concrete provider by configured name. A nil Provider is
// a valid result: it means "no provider configured", and the pipeline then
// uses its static fallback texts. Construct once at process start and
// inject into the pipeline config; the handle is safe for concurrent use.
func New(ctx context.Context, cfg Config, gen model.GenerationModelConfig, triage model.TriageConfig) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "gemini":
		return NewGemini(ctx, GeminiConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       gen.Model,
			MaxTokens:   triage.MaxTokens,
			Temperature: triage.Temperature,
			Timeout:     triage.Timeout(),
		})
	case "mock", "":
		logx.Warn().Msg("No completion provider configured, using static fallback responses")
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid LLM provider %q (valid: gemini, mock)", cfg.Name)
	}
}
