package pipeline

import (
	"context"

	"github.com/cloudwego/eino/compose"

	"github.com/convodesk/triage-core/internal/triage/classify"
	"github.com/convodesk/triage-core/internal/triage/conversations"
	"github.com/convodesk/triage-core/internal/triage/escalate"
	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/respond"
	"github.com/convodesk/triage-core/internal/triage/signals"
	"github.com/convodesk/triage-core/internal/triage/validate"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

// stages holds the per-stage collaborators. Each stage mutates only its own
// RequestState fields and advances the stage marker; the graph guarantees
// every stage runs exactly once, in order.
type stages struct {
	cfg        model.TriageConfig
	classifier *classify.Classifier
	generator  *respond.Generator
}

func newStages(cfg Config) *stages {
	return &stages{
		cfg:        cfg.Triage,
		classifier: classify.New(cfg.Provider),
		generator:  respond.New(cfg.Provider, cfg.Triage.DefaultLanguage),
	}
}

// newClassifierNode resolves language and prompt variant, extracts entities
// and assigns the intent. Language and intent are write-once from here on.
func (s *stages) newClassifierNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, st *model.RequestState) (*model.RequestState, error) {
		st.Language = s.cfg.DefaultLanguage
		if s.cfg.AutoDetectLanguage {
			if code, ok := signals.DetectLanguage(st.Message); ok {
				st.Language = code
			}
		}
		st.Variant = s.cfg.VariantOrDefault()

		if id, ok := signals.ExtractOrderNumber(st.Message); ok {
			st.OrderNumber = id
		}

		out := s.classifier.Classify(ctx, st.Message, conversations.FormatContext(st.History))
		st.Intent = out.Intent
		st.ClassificationReason = out.Reason
		if out.ForceEscalation {
			st.Escalate(escalate.ReasonUrgent)
		}

		logx.Info().
			Str("intent", string(st.Intent)).
			Str("language", st.Language).
			Str("variant", string(st.Variant)).
			Msg("Message classified")

		st.Stage = model.StageClassified
		return st, nil
	})
}

// newContextNode renders the history snapshot into the generation context.
func (s *stages) newContextNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, st *model.RequestState) (*model.RequestState, error) {
		st.FormattedContext = conversations.FormatContext(st.History)
		st.Stage = model.StageContextReady
		return st, nil
	})
}

// newEscalationNode runs the gate and attaches the sentiment score.
func (s *stages) newEscalationNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, st *model.RequestState) (*model.RequestState, error) {
		out := escalate.Evaluate(st.Intent, st.Message, st.RequiresEscalation)
		st.SentimentScore = out.SentimentScore
		if out.RequiresEscalation {
			st.Escalate(out.Reason)
		}
		st.Stage = model.StageEscalationChecked
		return st, nil
	})
}

// newGeneratorNode produces the reply text.
func (s *stages) newGeneratorNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, st *model.RequestState) (*model.RequestState, error) {
		st.Response = s.generator.Generate(ctx, respond.Input{
			Intent:    st.Intent,
			Message:   st.Message,
			Context:   st.FormattedContext,
			Language:  st.Language,
			Variant:   st.Variant,
			Sentiment: st.SentimentScore,
			Escalated: st.RequiresEscalation,
		})
		st.Stage = model.StageGenerated
		return st, nil
	})
}

// newValidatorNode accepts or rejects the reply; rejection substitutes the
// fixed hand-off text and forces escalation.
func (s *stages) newValidatorNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, st *model.RequestState) (*model.RequestState, error) {
		st.ResponseValid = validate.Response(st.Response)
		if !st.ResponseValid {
			logx.Warn().Int("length", len(st.Response)).Msg("Response failed validation, handing off")
			st.Response = validate.FallbackMessage
			st.Escalate("response failed validation")
		}
		st.Stage = model.StageValidated
		return st, nil
	})
}
