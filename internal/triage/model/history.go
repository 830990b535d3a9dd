package model

import "context"

// HistoryStore persists conversation turns outside the pipeline. The
// pipeline itself never touches it; callers read a bounded window and hand
// the snapshot in via TriageInput.
type HistoryStore interface {
	// Append adds one turn to the conversation history.
	Append(ctx context.Context, conversationID string, msg HistoryMessage) error

	// Window returns up to maxTurns of the most recent history, oldest first.
	Window(ctx context.Context, conversationID string, maxTurns int) ([]HistoryMessage, error)

	// Clear removes all history for a conversation.
	Clear(ctx context.Context, conversationID string) error

	// Len returns the number of stored turns.
	Len(ctx context.Context, conversationID string) (int, error)
}
