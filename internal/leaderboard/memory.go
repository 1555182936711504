package leaderboard

import (
	"context"
	"sync"
)

// MemoryStore keeps scores in process. Used when no database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	scores []Score
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Insert(_ context.Context, s Score) error {
	m.mu.Lock()
	m.scores = append(m.scores, s)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Top(_ context.Context, limit int) ([]Score, error) {
	m.mu.RLock()
	out := make([]Score, len(m.scores))
	// Reverse insertion order so equal timestamps also list newer first.
	for i, s := range m.scores {
		out[len(out)-1-i] = s
	}
	m.mu.RUnlock()

	SortTop(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scores)
}
