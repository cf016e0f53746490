// Package store keeps per-user assistant state. The original design held this
// in an ambient global map; here it is an injected store with an explicit
// concurrency discipline, so request handling never touches shared mutable
// state directly.
package store

import (
	"context"
	"sync"
)

// maxHistory is the rolling window of queries kept per user.
const maxHistory = 10

// ConversationStore records the recent queries of each user.
type ConversationStore interface {
	Append(ctx context.Context, userID, query string) error
	History(ctx context.Context, userID string) ([]string, error)
}

// MemoryStore is a mutex-guarded in-memory ConversationStore, used when no
// Redis address is configured and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	history map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{history: make(map[string][]string)}
}

func (s *MemoryStore) Append(_ context.Context, userID, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.history[userID], query)
	if len(entries) > maxHistory {
		entries = entries[len(entries)-maxHistory:]
	}
	s.history[userID] = entries
	return nil
}

func (s *MemoryStore) History(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.history[userID]
	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}
