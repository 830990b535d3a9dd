package model

// Intent is the classification label assigned to an inbound message.
type Intent string

const (
	IntentSupport Intent = "support"
	IntentSales   Intent = "sales"
	IntentGeneral Intent = "general"
	IntentUrgent  Intent = "urgent"
)

// KnownIntent reports whether the label is one of the four fixed intents.
func KnownIntent(v string) bool {
	switch Intent(v) {
	case IntentSupport, IntentSales, IntentGeneral, IntentUrgent:
		return true
	}
	return false
}

// Variant is an A/B testing label selecting among equivalent response
// templates for the same intent.
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// Stage identifies how far a request has travelled through the pipeline.
type Stage string

const (
	StageReceived          Stage = "received"
	StageClassified        Stage = "classified"
	StageContextReady      Stage = "context_ready"
	StageEscalationChecked Stage = "escalation_checked"
	StageGenerated         Stage = "generated"
	StageValidated         Stage = "validated"
	StageDone              Stage = "done"
)

// Sender identifies who authored a history message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// HistoryMessage is one turn of prior conversation, supplied by the caller
// oldest-first and never mutated by the pipeline.
type HistoryMessage struct {
	Sender  Sender `json:"sender_role"`
	Content string `json:"content"`
}

// RequestState is the per-message record the pipeline stages operate on.
// It is created once per inbound message, mutated in place as the graph
// advances, and discarded after the caller reads the result. Each stage
// writes only its own fields; Intent and Language are write-once.
type RequestState struct {
	Message string
	History []HistoryMessage

	Language string
	Variant  Variant

	Intent               Intent
	ClassificationReason string
	OrderNumber          string

	SentimentScore float64

	RequiresEscalation bool
	EscalationReason   string

	FormattedContext string

	Response      string
	ResponseValid bool

	Stage Stage
}

// Escalate flips the escalation flag. The flag is monotonic: the first
// transition records its reason and later calls cannot clear either field.
func (s *RequestState) Escalate(reason string) {
	if s.RequiresEscalation {
		return
	}
	s.RequiresEscalation = true
	s.EscalationReason = reason
}

// TriageInput is the public input for one pipeline invocation.
type TriageInput struct {
	ConversationID string           `json:"conversation_id"`
	Message        string           `json:"message"`
	History        []HistoryMessage `json:"history,omitempty"`
}

// Result carries the final RequestState fields returned to the caller.
// Persistence, delivery and escalation routing happen downstream.
type Result struct {
	Intent               Intent  `json:"intent"`
	RequiresEscalation   bool    `json:"requires_escalation"`
	EscalationReason     string  `json:"escalation_reason,omitempty"`
	Response             string  `json:"response"`
	ResponseValid        bool    `json:"response_valid"`
	SentimentScore       float64 `json:"sentiment_score"`
	Language             string  `json:"language"`
	ClassificationReason string  `json:"classification_reason,omitempty"`
	OrderNumber          string  `json:"order_number,omitempty"`
}

// ResultFromState projects the terminal state onto the result contract.
func ResultFromState(s *RequestState) *Result {
	return &Result{
		Intent:               s.Intent,
		RequiresEscalation:   s.RequiresEscalation,
		EscalationReason:     s.EscalationReason,
		Response:             s.Response,
		ResponseValid:        s.ResponseValid,
		SentimentScore:       s.SentimentScore,
		Language:             s.Language,
		ClassificationReason: s.ClassificationReason,
		OrderNumber:          s.OrderNumber,
	}
}
