// internal/store/memory.go
//
// In-memory implementation of the Store interface.
//
// Characteristics:
//   - Keeps results in an append-only slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hitandblow/internal/game"
)

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results
	results []Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Record appends r.
func (m *memory) Record(ctx context.Context, r Result) error {
	if r.Attempts <= 0 {
		return errors.New("record: attempts must be positive")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// Summary folds the results into per-difficulty stats.
func (m *memory) Summary(ctx context.Context) ([]Stat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	by := make(map[game.Difficulty]Stat)
	for _, r := range m.results {
		s := by[r.Difficulty]
		s.Difficulty = r.Difficulty
		s.Rounds++
		if s.BestAttempts == 0 || r.Attempts < s.BestAttempts {
			s.BestAttempts = r.Attempts
		}
		by[r.Difficulty] = s
	}
	return orderStats(by), nil
}

// Close is a no-op.
func (m *memory) Close() error { return nil }
