// internal/store/store.go
//
// Round history for the running process.
// The session records every solved round here and reads a per-difficulty
// summary back when the player exits. Nothing outlives the process: the
// SQLite backend runs against an in-memory database.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/robalobadob/hitandblow/internal/game"
)

// Result is one solved round.
type Result struct {
	Difficulty game.Difficulty
	Attempts   int
	FinishedAt time.Time
}

// Stat aggregates the solved rounds of one difficulty.
type Stat struct {
	Difficulty   game.Difficulty
	Rounds       int
	BestAttempts int
}

// Store defines the round history interface.
type Store interface {
	// Record appends a solved round.
	Record(ctx context.Context, r Result) error

	// Summary returns one Stat per difficulty played, in game.Difficulties order.
	Summary(ctx context.Context) ([]Stat, error)

	// Close releases backend resources.
	Close() error
}

// Open constructs the backend named by kind ("memory" or "sqlite").
func Open(ctx context.Context, kind string) (Store, error) {
	switch kind {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return OpenSQLite(ctx)
	default:
		return nil, fmt.Errorf("unknown history backend %q", kind)
	}
}

// orderStats returns stats sorted by game.Difficulties, dropping unknown modes.
func orderStats(byDifficulty map[game.Difficulty]Stat) []Stat {
	out := make([]Stat, 0, len(byDifficulty))
	for _, d := range game.Difficulties {
		if s, ok := byDifficulty[d]; ok {
			out = append(out, s)
		}
	}
	return out
}
