// internal/game/types.go
//
// Core type definitions for the Hit and Blow round engine.
// Defines:
//   - Difficulty: the selectable mode and its secret length.
//   - DigitPool: the ten symbols secrets and guesses are drawn from.
//   - Score: the (hit, blow) evaluation of a guess.
//   - State: the round lifecycle (uninitialized → playing → solved).
//   - Source: the random index provider used while building a secret.

package game

import (
	"errors"
	"fmt"
)

// Difficulty selects the secret length for a round.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal" // 3 digits
	DifficultyHard   Difficulty = "hard"   // 4 digits
)

// Difficulties lists every selectable mode in prompt order.
var Difficulties = []Difficulty{DifficultyNormal, DifficultyHard}

// ErrInvalidDifficulty is returned when a Difficulty has no known length.
// Reaching it means a value bypassed the selection prompt.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Length returns the number of digits in a secret for d.
func (d Difficulty) Length() (int, error) {
	switch d {
	case DifficultyNormal:
		return 3, nil
	case DifficultyHard:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, string(d))
	}
}

// DigitPool is the ordered universe of secret and guess symbols.
var DigitPool = [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Score is the evaluation of one guess.
//   - Hit:  symbol matches the secret at the same position.
//   - Blow: symbol appears in the secret at a different position.
type Score struct {
	Hit  int
	Blow int
}

// State is the lifecycle phase of a Round.
type State string

const (
	StateUninitialized State = "uninitialized"
	StatePlaying       State = "playing"
	StateSolved        State = "solved"
)

// Source yields uniformly distributed indexes in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}
