// Package escalate decides whether a message needs human handoff.
package escalate

import (
	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/signals"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

const (
	// ReasonUrgent is attached when classification already marked the
	// message urgent.
	ReasonUrgent = "urgent issue requiring immediate attention"
	// ReasonNegativeSentiment is attached when the sentiment score crosses
	// the escalation threshold.
	ReasonNegativeSentiment = "highly negative sentiment detected"

	// sentimentThreshold is the score at or below which a message is
	// escalated regardless of intent.
	sentimentThreshold = -0.6
)

// Outcome carries the gate's decision. The escalation flag is monotonic:
// callers must never use a false outcome to clear a previously set flag.
type Outcome struct {
	RequiresEscalation bool
	Reason             string
	SentimentScore     float64
}

// Evaluate applies the escalation rules in order: urgent intent first, then
// the sentiment threshold, then preservation of an existing flag. Sentiment
// is always computed, even when escalation is already decided, because the
// generator's tone adjustment and the result contract consume it.
func Evaluate(intent model.Intent, message string, alreadyEscalated bool) Outcome {
	sentiment := signals.SentimentScore(message)

	if intent == model.IntentUrgent {
		logx.Debug().Float64("sentiment", sentiment).Msg("Escalating urgent intent")
		return Outcome{RequiresEscalation: true, Reason: ReasonUrgent, SentimentScore: sentiment}
	}

	if sentiment <= sentimentThreshold {
		logx.Debug().Float64("sentiment", sentiment).Msg("Escalating on negative sentiment")
		return Outcome{RequiresEscalation: true, Reason: ReasonNegativeSentiment, SentimentScore: sentiment}
	}

	return Outcome{RequiresEscalation: alreadyEscalated, SentimentScore: sentiment}
}
