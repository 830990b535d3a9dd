package conversations

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convodesk/triage-core/internal/triage/model"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestRedisHistoryStoreRoundTrip(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisHistoryStore(client, 15*time.Minute)
	ctx := context.Background()

	turns := []model.HistoryMessage{
		{Sender: model.SenderUser, Content: "where is my package?"},
		{Sender: model.SenderAgent, Content: "let me check that for you"},
		{Sender: model.SenderUser, Content: "thanks"},
	}
	for _, turn := range turns {
		require.NoError(t, store.Append(ctx, "conv-1", turn))
	}

	got, err := store.Window(ctx, "conv-1", 0)
	require.NoError(t, err)
	assert.Equal(t, turns, got)

	n, err := store.Len(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRedisHistoryStoreWindowTrims(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisHistoryStore(client, 0)
	ctx := context.Background()

	for _, content := range []string{"one", "two", "three", "four"} {
		require.NoError(t, store.Append(ctx, "conv-2", model.HistoryMessage{Sender: model.SenderUser, Content: content}))
	}

	got, err := store.Window(ctx, "conv-2", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "three", got[0].Content)
	assert.Equal(t, "four", got[1].Content)
}

func TestRedisHistoryStoreTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisHistoryStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-3", model.HistoryMessage{Sender: model.SenderUser, Content: "hi"}))

	ttl := mr.TTL("conversation:conv-3:messages")
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisHistoryStoreClear(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisHistoryStore(client, 0)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-4", model.HistoryMessage{Sender: model.SenderUser, Content: "hi"}))
	require.NoError(t, store.Clear(ctx, "conv-4"))

	got, err := store.Window(ctx, "conv-4", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := store.Len(ctx, "conv-4")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisHistoryStoreMissingConversation(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisHistoryStore(client, 0)

	got, err := store.Window(context.Background(), "never-seen", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
