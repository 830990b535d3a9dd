// Package prompts owns the prompt templates, the A/B variant selection and
// the fixed fallback texts the generator substitutes when no provider is
// available.
package prompts

import (
	_ "embed"

	"github.com/convodesk/triage-core/internal/triage/model"
)

//go:embed template/classification.txt
var classificationPrompt string

//go:embed template/support_a.txt
var supportPromptA string

//go:embed template/support_b.txt
var supportPromptB string

//go:embed template/sales_a.txt
var salesPromptA string

//go:embed template/sales_b.txt
var salesPromptB string

//go:embed template/general_a.txt
var generalPromptA string

//go:embed template/general_b.txt
var generalPromptB string

// EscalationMessage is returned verbatim whenever a request is escalated.
const EscalationMessage = `I understand this is important to you, and I want to make sure you get the best possible assistance. I'm connecting you with a human agent who will be able to help you right away. They'll be with you shortly.

In the meantime, your case has been flagged as high priority.`

// mockResponses are the fixed per-intent texts used when the completion
// provider is absent or failing.
var mockResponses = map[model.Intent]string{
	model.IntentSupport: "Thank you for reaching out! I understand your concern. Could you please provide your order number or account email so I can look into this for you right away?",
	model.IntentSales:   "Thank you for your interest in our enterprise plan! For 50 users, our pricing starts at $X per month. I'd be happy to schedule a demo to show you all the features. Would that work for you?",
	model.IntentGeneral: "Hello! Thanks for getting in touch. How can I assist you today?",
	model.IntentUrgent:  EscalationMessage,
}

// MockResponse returns the static fallback text for an intent. Unknown
// intents get the general text.
func MockResponse(intent model.Intent) string {
	if r, ok := mockResponses[intent]; ok {
		return r
	}
	return mockResponses[model.IntentGeneral]
}

// ClassificationPrompt returns the intent classification template. The
// template expects {message} and {context} variables.
func ClassificationPrompt() string {
	return classificationPrompt
}

var responseTemplates = map[string]string{
	"support_A": supportPromptA,
	"support_B": supportPromptB,
	"sales_A":   salesPromptA,
	"sales_B":   salesPromptB,
	"general_A": generalPromptA,
	"general_B": generalPromptB,
}

// FallbackTemplateKey is resolved for any unknown (intent, variant) pair.
const FallbackTemplateKey = "general_A"
