// Package conversations handles conversation history: formatting it into
// the bounded context block the pipeline consumes, and persisting turns in
// Redis for the caller-side plumbing.
package conversations

import (
	"strings"

	"github.com/convodesk/triage-core/internal/triage/model"
)

// NoContextSentinel is the fixed block returned for an empty history.
const NoContextSentinel = "No previous context."

// FormatContext renders conversation history, oldest first, into a plain
// text block of "USER: ..." / "AGENT: ..." lines. Deterministic: equal
// input always yields equal output.
func FormatContext(history []model.HistoryMessage) string {
	if len(history) == 0 {
		return NoContextSentinel
	}

	var b strings.Builder
	for _, msg := range history {
		if msg.Content == "" {
			continue
		}
		b.WriteString(senderLabel(msg.Sender))
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}

	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return NoContextSentinel
	}
	return out
}

func senderLabel(s model.Sender) string {
	switch s {
	case model.SenderUser:
		return "USER"
	case model.SenderAgent:
		return "AGENT"
	default:
		return strings.ToUpper(string(s))
	}
}
