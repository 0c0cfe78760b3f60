package store

import (
	"context"
	"sync"
)

// IntentStore is the in-process fallback for payment-intent idempotency,
// used when no Redis address is configured. Entries live for the process
// lifetime, matching the rest of the in-memory store.
type IntentStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

func NewIntentStore() *IntentStore {
	return &IntentStore{secrets: make(map[string]string)}
}

// Lookup returns the client secret previously issued for the key, if any.
func (s *IntentStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[key]
	return secret, ok, nil
}

// Store records the client secret issued for the key.
func (s *IntentStore) Store(_ context.Context, key, clientSecret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.secrets[key] = clientSecret
	return nil
}
