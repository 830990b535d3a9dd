// Package respond produces the final reply text: variant-aware template
// generation through the provider, static mocks when the provider is absent
// or failing, and sentiment-driven tone adjustment.
package respond

import (
	"context"
	"fmt"

	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/prompts"
	"github.com/convodesk/triage-core/internal/triage/provider"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

// Input bundles everything generation reads from the request state.
type Input struct {
	Intent    model.Intent
	Message   string
	Context   string
	Language  string
	Variant   model.Variant
	Sentiment float64
	Escalated bool
}

// Generator renders a reply for a classified message.
type Generator struct {
	provider        provider.Provider
	defaultLanguage string
}

// New builds a Generator. A nil provider means mock responses only.
func New(p provider.Provider, defaultLanguage string) *Generator {
	return &Generator{provider: p, defaultLanguage: defaultLanguage}
}

// Generate returns the reply text. Escalated requests get the fixed
// escalation message verbatim and never reach the provider; all other
// failures degrade to the per-intent mock response. The result is always
// non-empty.
func (g *Generator) Generate(ctx context.Context, in Input) string {
	if in.Escalated {
		return prompts.EscalationMessage
	}

	key := prompts.SelectVariant(in.Intent, in.Variant)
	template := withLanguageDirective(prompts.ResponseTemplate(key), in.Language, g.defaultLanguage)

	text := ""
	if g.provider != nil {
		reply, err := g.provider.Complete(ctx, template, map[string]any{
			"message": in.Message,
			"context": in.Context,
		})
		if err != nil {
			logx.Error().Err(err).Str("template", key).Msg("Response generation failed, using mock response")
		} else {
			text = reply
		}
	}
	if text == "" {
		text = prompts.MockResponse(in.Intent)
	}

	return AdjustTone(text, in.Sentiment)
}

// withLanguageDirective prepends a reply-language instruction when the
// detected language differs from the configured default.
func withLanguageDirective(template, language, defaultLanguage string) string {
	if language == "" || language == defaultLanguage {
		return template
	}
	return fmt.Sprintf("You MUST answer in language code '%s'.\n\n%s", language, template)
}
