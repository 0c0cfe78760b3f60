package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const intentTTL = 24 * time.Hour

// IntentStore provides payment-intent idempotency backed by Redis. The
// stored value is the issued client secret, so a replayed Idempotency-Key
// returns the exact same intent.
// Key format: intent:<idempotency_key>
type IntentStore struct {
	client *redis.Client
}

// NewIntentStore creates an IntentStore wrapping the given Redis client.
func NewIntentStore(client *redis.Client) *IntentStore {
	return &IntentStore{client: client}
}

// Lookup returns the client secret previously stored for the key, if any.
func (s *IntentStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	secret, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("intent lookup: %w", err)
	}
	return secret, true, nil
}

// Store records the client secret for the key (expires after intentTTL).
func (s *IntentStore) Store(ctx context.Context, key, clientSecret string) error {
	return s.client.Set(ctx, s.key(key), clientSecret, intentTTL).Err()
}

func (s *IntentStore) key(idempotencyKey string) string {
	return fmt.Sprintf("intent:%s", idempotencyKey)
}
