// internal/game/engine.go
//
// Round engine for a single Hit and Blow round.
// Responsibilities:
//   - Build a secret of unique digits for the chosen difficulty.
//   - Validate and score guesses (length, digit membership, uniqueness).
//   - Track state transitions: uninitialized → playing → solved → reset.
//
// Notes:
//   - A Round is reused across rounds; End returns it to the uninitialized state.
//   - Only validated guesses count as attempts.
//   - Randomness comes from the Source passed to NewRound.

package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidGuess is the recoverable rejection of a malformed guess.
	// The wrapped causes below narrow it down.
	ErrInvalidGuess = errors.New("invalid guess")

	ErrGuessLength    = fmt.Errorf("%w: wrong number of digits", ErrInvalidGuess)
	ErrGuessSymbol    = fmt.Errorf("%w: not a digit", ErrInvalidGuess)
	ErrGuessDuplicate = fmt.Errorf("%w: repeated digit", ErrInvalidGuess)

	// ErrRoundState is returned when an operation does not fit the round phase.
	ErrRoundState = errors.New("operation not allowed in round state")
)

// Round holds the state of one Hit and Blow round.
type Round struct {
	src        Source
	difficulty Difficulty
	secret     []string
	attempts   int
	state      State
}

// NewRound constructs an uninitialized round drawing digits from src.
func NewRound(src Source) *Round {
	return &Round{src: src, state: StateUninitialized}
}

// Setup records the difficulty and draws a fresh secret.
// Indexes already used are redrawn until the secret reaches the required length.
func (r *Round) Setup(d Difficulty) error {
	if r.state != StateUninitialized {
		return fmt.Errorf("%w: setup while %s", ErrRoundState, r.state)
	}
	n, err := d.Length()
	if err != nil {
		return err
	}

	r.difficulty = d
	r.secret = make([]string, 0, n)
	for len(r.secret) < n {
		digit := DigitPool[r.src.IntN(len(DigitPool))]
		if !slices.Contains(r.secret, digit) {
			r.secret = append(r.secret, digit)
		}
	}
	r.attempts = 0
	r.state = StatePlaying

	log.Debug().Str("difficulty", string(d)).Int("length", n).Msg("round set up")
	return nil
}

// SubmitGuess validates and scores a comma-separated guess.
// Returns: the score, the resulting state, or an error.
//
// Validation rules:
//   - Round must be playing.
//   - Token count equals the secret length (tokens are not trimmed).
//   - Every token is a member of DigitPool.
//   - No token repeats.
//
// A rejected guess leaves the secret and the attempt counter untouched.
// An accepted guess increments the counter; an exact match solves the round.
func (r *Round) SubmitGuess(raw string) (Score, State, error) {
	if r.state != StatePlaying {
		return Score{}, r.state, fmt.Errorf("%w: guess while %s", ErrRoundState, r.state)
	}
	guess := ParseGuess(raw)
	if err := ValidateGuess(guess, len(r.secret)); err != nil {
		log.Debug().Err(err).Msg("guess rejected")
		return Score{}, r.state, err
	}

	score := scoreGuess(r.secret, guess)
	r.attempts++
	if score.Hit == len(r.secret) {
		r.state = StateSolved
	}

	log.Debug().Int("attempt", r.attempts).Int("hit", score.Hit).Int("blow", score.Blow).Msg("guess scored")
	return score, r.state, nil
}

// End reports the final attempt count and resets the round for reuse.
func (r *Round) End() (int, error) {
	if r.state != StateSolved {
		return 0, fmt.Errorf("%w: end while %s", ErrRoundState, r.state)
	}
	attempts := r.attempts
	r.secret = nil
	r.attempts = 0
	r.state = StateUninitialized

	log.Debug().Int("attempts", attempts).Msg("round ended")
	return attempts, nil
}

// State reports the current lifecycle phase.
func (r *Round) State() State { return r.state }

// Attempts reports the number of accepted guesses in the current round.
func (r *Round) Attempts() int { return r.attempts }

// Difficulty reports the mode chosen at the last setup.
func (r *Round) Difficulty() Difficulty { return r.difficulty }

// Secret returns a copy of the current secret.
func (r *Round) Secret() []string { return slices.Clone(r.secret) }

// ParseGuess splits raw input on commas. Tokens are used as-is.
func ParseGuess(raw string) []string {
	return strings.Split(raw, ",")
}

// ValidateGuess checks a parsed guess against a secret of length n.
func ValidateGuess(guess []string, n int) error {
	if len(guess) != n {
		return ErrGuessLength
	}
	seen := make(map[string]struct{}, len(guess))
	for _, tok := range guess {
		if !slices.Contains(DigitPool[:], tok) {
			return ErrGuessSymbol
		}
		if _, dup := seen[tok]; dup {
			return ErrGuessDuplicate
		}
		seen[tok] = struct{}{}
	}
	return nil
}

// scoreGuess compares guess to secret position by position.
// A positional match is a hit; otherwise presence anywhere in the secret is a blow.
// Secrets never repeat a digit, so no secret position is claimed twice.
func scoreGuess(secret, guess []string) Score {
	var s Score
	for i, tok := range guess {
		switch {
		case tok == secret[i]:
			s.Hit++
		case slices.Contains(secret, tok):
			s.Blow++
		}
	}
	return s
}
