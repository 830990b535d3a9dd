package conversations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/convodesk/triage-core/internal/triage/model"
)

func TestFormatContext(t *testing.T) {
	history := []model.HistoryMessage{
		{Sender: model.SenderUser, Content: "Hello"},
		{Sender: model.SenderAgent, Content: "Hi there!"},
		{Sender: model.SenderUser, Content: "I need help"},
	}

	got := FormatContext(history)

	assert.Contains(t, got, "USER: Hello")
	assert.Contains(t, got, "AGENT: Hi there!")
	assert.Contains(t, got, "USER: I need help")
}

func TestFormatContextEmpty(t *testing.T) {
	assert.Equal(t, NoContextSentinel, FormatContext(nil))
	assert.Equal(t, NoContextSentinel, FormatContext([]model.HistoryMessage{}))
}

func TestFormatContextSkipsBlankTurns(t *testing.T) {
	history := []model.HistoryMessage{
		{Sender: model.SenderUser, Content: ""},
		{Sender: model.SenderAgent, Content: ""},
	}
	assert.Equal(t, NoContextSentinel, FormatContext(history))
}

func TestFormatContextDeterministic(t *testing.T) {
	history := []model.HistoryMessage{
		{Sender: model.SenderUser, Content: "first"},
		{Sender: model.SenderAgent, Content: "second"},
	}

	assert.Equal(t, FormatContext(history), FormatContext(history))
}

func TestFormatContextPreservesOrder(t *testing.T) {
	history := []model.HistoryMessage{
		{Sender: model.SenderUser, Content: "oldest"},
		{Sender: model.SenderUser, Content: "newest"},
	}

	got := FormatContext(history)
	assert.Equal(t, "USER: oldest\nUSER: newest", got)
}
