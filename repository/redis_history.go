package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"interest-calculator/domain"
)

const DefaultHistoryKey = "interest-calculator:history"

// RedisHistory stores the history as a capped Redis list of JSON entries.
type RedisHistory struct {
	client redis.UniversalClient
	key    string
}

func NewRedisHistory(client redis.UniversalClient, key string) *RedisHistory {
	if key == "" {
		key = DefaultHistoryKey
	}
	return &RedisHistory{
		client: client,
		key:    key,
	}
}

// NewRedisClient opens a client for the given server; it does not dial
// until the first command.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (r *RedisHistory) Add(ctx context.Context, entry domain.HistoryEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.key, payload)
		pipe.LTrim(ctx, r.key, 0, domain.HistoryCapacity-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push history entry: %w", err)
	}
	return nil
}

func (r *RedisHistory) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, domain.HistoryCapacity-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *RedisHistory) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
