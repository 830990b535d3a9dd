package prompts

import (
	"fmt"

	"github.com/convodesk/triage-core/internal/triage/model"
)

// SelectVariant composes the template key for an (intent, variant) pair,
// e.g. ("support", "B") -> "support_B". Combinations without a registered
// template resolve to the general_A fallback.
func SelectVariant(intent model.Intent, variant model.Variant) string {
	key := fmt.Sprintf("%s_%s", intent, variant)
	if _, ok := responseTemplates[key]; !ok {
		return FallbackTemplateKey
	}
	return key
}

// ResponseTemplate returns the template text for a key produced by
// SelectVariant. Unknown keys fall back to general_A so generation can
// never fail on configuration.
func ResponseTemplate(key string) string {
	if t, ok := responseTemplates[key]; ok {
		return t
	}
	return responseTemplates[FallbackTemplateKey]
}
