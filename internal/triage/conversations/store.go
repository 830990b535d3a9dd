package conversations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/convodesk/triage-core/internal/core/error"
	"github.com/convodesk/triage-core/internal/triage/model"
	logx "github.com/convodesk/triage-core/pkg/logger"
)

// RedisHistoryStore keeps per-conversation turns in a Redis list with a TTL
// refreshed on every write. It lives outside the pipeline: callers read a
// bounded window from it and pass the snapshot in.
type RedisHistoryStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisHistoryStore(rdb redis.Cmdable, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{rdb: rdb, ttl: ttl}
}

func (s *RedisHistoryStore) conversationKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:messages", conversationID)
}

// Append adds one turn to the conversation and refreshes the TTL.
func (s *RedisHistoryStore) Append(ctx context.Context, conversationID string, msg model.HistoryMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to marshal history message")
		return fmt.Errorf("marshal history message: %w", err)
	}
	key := s.conversationKey(conversationID)

	if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push history message to redis")
		return errx.WrapRedis(err)
	}
	if s.ttl > 0 {
		if ok, err := s.rdb.Expire(ctx, key, s.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", s.ttl).Msg("failed to refresh TTL on conversation key")
		}
	}
	return nil
}

// Window returns up to maxTurns of the most recent turns, oldest first.
// maxTurns <= 0 returns the whole history.
func (s *RedisHistoryStore) Window(ctx context.Context, conversationID string, maxTurns int) ([]model.HistoryMessage, error) {
	key := s.conversationKey(conversationID)

	start := int64(0)
	if maxTurns > 0 {
		start = int64(-maxTurns)
	}
	rows, err := s.rdb.LRange(ctx, key, start, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.HistoryMessage{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load history window from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]model.HistoryMessage, 0, len(rows))
	for i, row := range rows {
		var m model.HistoryMessage
		if err := json.Unmarshal([]byte(row), &m); err != nil {
			logx.Error().Err(err).Str("conversation_id", conversationID).Int("index", i).Msg("failed to unmarshal history message")
			return nil, fmt.Errorf("unmarshal history message at index %d: %w", i, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Clear removes all history for a conversation.
func (s *RedisHistoryStore) Clear(ctx context.Context, conversationID string) error {
	key := s.conversationKey(conversationID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete conversation history from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

// Len returns the number of stored turns.
func (s *RedisHistoryStore) Len(ctx context.Context, conversationID string) (int, error) {
	key := s.conversationKey(conversationID)
	n, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get history length from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.HistoryStore = (*RedisHistoryStore)(nil)
