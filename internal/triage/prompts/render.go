package prompts

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// Render fills the {message}/{context} style variables of a template via
// the Eino prompt component, so prompt callbacks fire on every render.
func Render(ctx context.Context, template string, vars map[string]any) (string, error) {
	tpl := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(template),
	)
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("prompt render: empty result")
	}
	return msgs[0].Content, nil
}
