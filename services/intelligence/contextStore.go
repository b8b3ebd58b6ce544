// File: intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"shoba/models"

	"github.com/go-redis/redis/v8"
)

const (
	chatContextPrefix = "chat:ctx:"
	maxContextTurns   = 10
)

// RedisContextStore keeps the rolling conversation history per chat
// widget instance.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, chatID string) ([]models.ChatTurn, error) {
	key := chatContextPrefix + chatID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var turns []models.ChatTurn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// Append adds turns to the history, keeping only the most recent ones.
func (s *RedisContextStore) Append(ctx context.Context, chatID string, turns ...models.ChatTurn) error {
	existing, err := s.Get(ctx, chatID)
	if err != nil {
		return err
	}
	existing = append(existing, turns...)
	if len(existing) > maxContextTurns {
		existing = existing[len(existing)-maxContextTurns:]
	}
	b, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatContextPrefix+chatID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, chatID string) error {
	return s.client.Del(ctx, chatContextPrefix+chatID).Err()
}
