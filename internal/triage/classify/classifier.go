// Package classify assigns one of the four fixed intents to an inbound
// message. Urgency always wins before any model call; provider failures
// degrade to rule-based keyword classification, never to an error.
package classify

import (
	"context"
	"strings"

	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/prompts"
	"github.com/convodesk/triage-core/internal/triage/provider"
	"github.com/convodesk/triage-core/internal/triage/signals"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

// classificationMarker labels the category line in the provider's reply.
const classificationMarker = "CLASSIFICATION:"

// salesKeywords are checked before supportKeywords; the first matching set
// wins and there is no weighting.
var salesKeywords = []string{
	"price", "pricing", "cost", "buy", "purchase", "plan", "enterprise", "demo",
}

var supportKeywords = []string{
	"order", "tracking", "issue", "problem", "help", "support", "not working",
}

// Outcome is the result of one classification.
type Outcome struct {
	Intent model.Intent
	// Reason is the provider's raw reply when LLM classification succeeded.
	Reason string
	// ForceEscalation is set when urgency short-circuited classification.
	ForceEscalation bool
}

// Classifier assigns intents using the optional completion provider with a
// deterministic rule-based fallback.
type Classifier struct {
	provider provider.Provider
}

// New builds a Classifier. A nil provider is valid and means rule-based
// classification only.
func New(p provider.Provider) *Classifier {
	return &Classifier{provider: p}
}

// Classify determines the intent for a message given its formatted
// conversation context. It always terminates with one of the four fixed
// intents.
func (c *Classifier) Classify(ctx context.Context, message, contextBlock string) Outcome {
	if signals.DetectUrgency(message) {
		logx.Warn().Str("message", snippet(message)).Msg("Urgent message detected")
		return Outcome{Intent: model.IntentUrgent, ForceEscalation: true}
	}

	if c.provider != nil {
		reply, err := c.provider.Complete(ctx, prompts.ClassificationPrompt(), map[string]any{
			"message": message,
			"context": contextBlock,
		})
		if err != nil {
			logx.Error().Err(err).Msg("LLM classification failed, falling back to rules")
		} else if intent, ok := parseClassification(reply); ok {
			logx.Debug().Str("intent", string(intent)).Msg("Message classified by provider")
			return Outcome{Intent: intent, Reason: strings.TrimSpace(reply)}
		} else {
			logx.Warn().Str("reply", snippet(reply)).Msg("Classification marker missing or invalid, falling back to rules")
		}
	}

	intent := ruleBasedIntent(message)
	logx.Debug().Str("intent", string(intent)).Msg("Message classified by rules")
	return Outcome{Intent: intent}
}

// parseClassification scans the reply for the CLASSIFICATION marker and
// validates the category against the fixed intent set.
func parseClassification(reply string) (model.Intent, bool) {
	for _, line := range strings.Split(reply, "\n") {
		idx := strings.Index(strings.ToUpper(line), classificationMarker)
		if idx < 0 {
			continue
		}
		category := strings.ToLower(strings.TrimSpace(line[idx+len(classificationMarker):]))
		if model.KnownIntent(category) {
			return model.Intent(category), true
		}
		return "", false
	}
	return "", false
}

// ruleBasedIntent is the deterministic fallback: sales keywords first, then
// support keywords, else general.
func ruleBasedIntent(message string) model.Intent {
	lower := strings.ToLower(message)

	for _, kw := range salesKeywords {
		if strings.Contains(lower, kw) {
			return model.IntentSales
		}
	}
	for _, kw := range supportKeywords {
		if strings.Contains(lower, kw) {
			return model.IntentSupport
		}
	}
	return model.IntentGeneral
}

// snippet truncates to 50 characters on a rune boundary for log output.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= 50 {
		return s
	}
	return string(runes[:50]) + "..."
}
