package model

import "time"

// ================ Config ================

// TriageConfig is the flat option set consumed by the pipeline stages.
type TriageConfig struct {
	AutoDetectLanguage bool    `envconfig:"TRIAGE_AUTO_DETECT_LANGUAGE" default:"true"`
	DefaultLanguage    string  `envconfig:"TRIAGE_DEFAULT_LANGUAGE" default:"en"`
	PromptVariant      string  `envconfig:"TRIAGE_PROMPT_VARIANT" default:"A"`
	MaxTokens          int     `envconfig:"TRIAGE_MAX_TOKENS" default:"500"`
	Temperature        float32 `envconfig:"TRIAGE_TEMPERATURE" default:"0.7"`
	TimeoutSeconds     int     `envconfig:"TRIAGE_TIMEOUT_SECONDS" default:"30"`
}

// Variant normalises the configured prompt variant. Unknown values fall
// back to variant A rather than failing the run.
func (c TriageConfig) VariantOrDefault() Variant {
	switch Variant(c.PromptVariant) {
	case VariantA, VariantB:
		return Variant(c.PromptVariant)
	default:
		return VariantA
	}
}

// Timeout returns the bounded deadline applied to every provider call.
func (c TriageConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GenerationModelConfig configures the completion model behind the provider.
type GenerationModelConfig struct {
	Model string `envconfig:"GENERATION_MODEL" default:"gemini-2.5-flash"`
}

// ConversationConfig configures caller-side history plumbing.
type ConversationConfig struct {
	TTL      string `envconfig:"CONVERSATION_TTL" default:"15m"`
	MaxTurns int    `envconfig:"CONVERSATION_MAX_TURNS" default:"10"`
}
