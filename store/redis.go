package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	conversationKeyPrefix = "conversation:"
	conversationTTL       = 24 * time.Hour
)

// RedisStore keeps conversation history in Redis lists, one list per user,
// trimmed to the rolling window on every append.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: rdb}, nil
}

func (s *RedisStore) Append(ctx context.Context, userID, query string) error {
	key := conversationKeyPrefix + userID

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, query)
	pipe.LTrim(ctx, key, -maxHistory, -1)
	pipe.Expire(ctx, key, conversationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append conversation entry: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, userID string) ([]string, error) {
	entries, err := s.client.LRange(ctx, conversationKeyPrefix+userID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation history: %w", err)
	}
	return entries, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
