package prompts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convodesk/triage-core/internal/triage/model"
)

func TestSelectVariant(t *testing.T) {
	tests := []struct {
		name    string
		intent  model.Intent
		variant model.Variant
		want    string
	}{
		{"support A", model.IntentSupport, model.VariantA, "support_A"},
		{"support B", model.IntentSupport, model.VariantB, "support_B"},
		{"sales A", model.IntentSales, model.VariantA, "sales_A"},
		{"general B", model.IntentGeneral, model.VariantB, "general_B"},
		{"unknown intent", model.Intent("unknown"), model.Variant("Z"), FallbackTemplateKey},
		{"urgent has no template", model.IntentUrgent, model.VariantA, FallbackTemplateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectVariant(tt.intent, tt.variant))
		})
	}
}

func TestResponseTemplateFallback(t *testing.T) {
	assert.Equal(t, ResponseTemplate(FallbackTemplateKey), ResponseTemplate("nope_Q"))
	assert.NotEmpty(t, ResponseTemplate("support_B"))
	assert.NotEqual(t, ResponseTemplate("support_A"), ResponseTemplate("support_B"))
}

func TestRenderFillsVariables(t *testing.T) {
	ctx := context.Background()

	out, err := Render(ctx, ResponseTemplate("support_A"), map[string]any{
		"message": "my delivery is late",
		"context": "No previous context.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "my delivery is late")
	assert.Contains(t, out, "No previous context.")
	assert.NotContains(t, out, "{message}")
	assert.NotContains(t, out, "{context}")
}

func TestRenderClassificationPrompt(t *testing.T) {
	ctx := context.Background()

	out, err := Render(ctx, ClassificationPrompt(), map[string]any{
		"message": "how much is the team plan?",
		"context": "No previous context.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "CLASSIFICATION:")
	assert.Contains(t, out, "how much is the team plan?")
}

func TestMockResponse(t *testing.T) {
	assert.Equal(t, EscalationMessage, MockResponse(model.IntentUrgent))
	assert.NotEmpty(t, MockResponse(model.IntentSales))
	assert.Equal(t, MockResponse(model.IntentGeneral), MockResponse(model.Intent("bogus")))
}
