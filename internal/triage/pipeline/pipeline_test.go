package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convodesk/triage-core/internal/triage/escalate"
	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/prompts"
	"github.com/convodesk/triage-core/internal/triage/provider"
	"github.com/convodesk/triage-core/internal/triage/validate"
)

// stubProvider returns a fixed reply (or error) and counts calls.
type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Complete(ctx context.Context, template string, vars map[string]any) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func buildRunner(t *testing.T, p provider.Provider) Runner {
	t.Helper()
	runner, err := Build(context.Background(), Config{
		Provider: p,
		Triage: model.TriageConfig{
			AutoDetectLanguage: false,
			DefaultLanguage:    "en",
			PromptVariant:      "A",
			MaxTokens:          500,
			Temperature:        0.7,
			TimeoutSeconds:     5,
		},
	})
	require.NoError(t, err)
	return runner
}

func TestPipelineUrgentMessageEscalatesWithoutProvider(t *testing.T) {
	stub := &stubProvider{err: errors.New("should not be called")}
	runner := buildRunner(t, stub)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-urgent",
		Message:        "This is ridiculous!!! I've been charged twice!",
	})
	require.NoError(t, err)

	assert.Equal(t, model.IntentUrgent, res.Intent)
	assert.True(t, res.RequiresEscalation)
	assert.Equal(t, escalate.ReasonUrgent, res.EscalationReason)
	assert.Equal(t, prompts.EscalationMessage, res.Response)
	assert.True(t, res.ResponseValid)
	assert.Negative(t, res.SentimentScore)
	assert.Zero(t, stub.calls, "urgent path must not reach the model")
}

func TestPipelineSalesFallsBackToCannedResponse(t *testing.T) {
	runner := buildRunner(t, nil)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-sales",
		Message:        "What's the pricing for your enterprise plan?",
	})
	require.NoError(t, err)

	assert.Equal(t, model.IntentSales, res.Intent)
	assert.False(t, res.RequiresEscalation)
	assert.Equal(t, prompts.MockResponse(model.IntentSales), res.Response)
	assert.True(t, res.ResponseValid)
	assert.Equal(t, 0.0, res.SentimentScore)
	assert.Equal(t, "en", res.Language)
}

func TestPipelineRejectsShortResponseAndHandsOff(t *testing.T) {
	stub := &stubProvider{reply: "Hi"}
	runner := buildRunner(t, stub)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-short",
		Message:        "Hello there, anyone around?",
	})
	require.NoError(t, err)

	assert.False(t, res.ResponseValid)
	assert.Equal(t, validate.FallbackMessage, res.Response)
	assert.True(t, res.RequiresEscalation)
	assert.Equal(t, "response failed validation", res.EscalationReason)
}

func TestPipelineNegativeSentimentEscalates(t *testing.T) {
	runner := buildRunner(t, nil)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-angry",
		Message:        "The product is terrible, useless and the worst.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.IntentGeneral, res.Intent)
	assert.True(t, res.RequiresEscalation)
	assert.Equal(t, escalate.ReasonNegativeSentiment, res.EscalationReason)
	assert.Equal(t, prompts.EscalationMessage, res.Response)
	assert.LessOrEqual(t, res.SentimentScore, -0.6)
}

func TestPipelineExtractsOrderNumber(t *testing.T) {
	runner := buildRunner(t, nil)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-order",
		Message:        "Where is my order #55501? The tracking page shows nothing.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.IntentSupport, res.Intent)
	assert.Equal(t, "55501", res.OrderNumber)
	assert.Equal(t, prompts.MockResponse(model.IntentSupport), res.Response)
	assert.True(t, res.ResponseValid)
}

func TestPipelineEscalationReasonIsStable(t *testing.T) {
	// Urgent and deeply negative at once: the urgency reason is recorded
	// first and the sentiment stage must not overwrite it.
	runner := buildRunner(t, nil)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-both",
		Message:        "This is ridiculous and terrible, I hate it!!!",
	})
	require.NoError(t, err)

	assert.Equal(t, model.IntentUrgent, res.Intent)
	assert.True(t, res.RequiresEscalation)
	assert.Equal(t, escalate.ReasonUrgent, res.EscalationReason)
	assert.LessOrEqual(t, res.SentimentScore, -0.6)
}

func TestPipelineHistoryFeedsClassification(t *testing.T) {
	runner := buildRunner(t, nil)

	res, err := runner.Invoke(context.Background(), model.TriageInput{
		ConversationID: "conv-history",
		Message:        "Can you check on that for me?",
		History: []model.HistoryMessage{
			{Sender: model.SenderUser, Content: "Hi, I have a question."},
			{Sender: model.SenderAgent, Content: "Of course, how can I help?"},
		},
	})
	require.NoError(t, err)

	assert.True(t, res.ResponseValid)
	assert.False(t, res.RequiresEscalation)
}
