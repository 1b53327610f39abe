package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps pending forms in Redis, letting several bot replicas share
// session state. Keys carry no TTL; a token is cleared by the next dispatch.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore constructs a Redis-backed store.
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, logger: logger}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}

// Get returns the chat's pending form. A missing key or backend failure
// reads as idle.
func (s *RedisStore) Get(ctx context.Context, chatID int64) Form {
	raw, err := s.client.Get(ctx, sessionKey(chatID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Error("session get failed", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return FormNone
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Error("session value malformed", zap.Int64("chat_id", chatID), zap.String("raw", raw))
		return FormNone
	}
	return Form(value)
}

// Set overwrites the chat's pending form.
func (s *RedisStore) Set(ctx context.Context, chatID int64, form Form) {
	if err := s.client.Set(ctx, sessionKey(chatID), strconv.Itoa(int(form)), 0).Err(); err != nil {
		s.logger.Error("session set failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// Clear marks the chat idle.
func (s *RedisStore) Clear(ctx context.Context, chatID int64) {
	if err := s.client.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		s.logger.Error("session clear failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
