package game

import (
	"errors"
	"slices"
	"testing"
)

// seqSource replays fixed indexes, cycling when exhausted.
type seqSource struct {
	idx []int
	pos int
}

func (s *seqSource) IntN(n int) int {
	v := s.idx[s.pos%len(s.idx)] % n
	s.pos++
	return v
}

func newPlayingRound(t *testing.T, d Difficulty, idx ...int) *Round {
	t.Helper()
	r := NewRound(&seqSource{idx: idx})
	if err := r.Setup(d); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return r
}

func TestDifficultyLength(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyNormal, 3},
		{DifficultyHard, 4},
	}
	for _, tc := range cases {
		got, err := tc.d.Length()
		if err != nil {
			t.Fatalf("length %s: %v", tc.d, err)
		}
		if got != tc.want {
			t.Fatalf("expected %s length %d, got %d", tc.d, tc.want, got)
		}
	}

	if _, err := Difficulty("expert").Length(); !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestSetupSkipsRepeatedDigits(t *testing.T) {
	r := newPlayingRound(t, DifficultyHard, 7, 7, 2, 7, 2, 0, 9)
	want := []string{"7", "2", "0", "9"}
	if got := r.Secret(); !slices.Equal(got, want) {
		t.Fatalf("expected secret %v, got %v", want, got)
	}
	if r.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", r.State())
	}
	if r.Attempts() != 0 {
		t.Fatalf("expected 0 attempts, got %d", r.Attempts())
	}
}

func TestSetupSecretIsDistinctDigits(t *testing.T) {
	for _, d := range Difficulties {
		for seed := 0; seed < 50; seed++ {
			r := newPlayingRound(t, d, seed, seed*7+3, seed*3+1, seed+5, 11, 4, 6, 8)
			n, _ := d.Length()
			secret := r.Secret()
			if len(secret) != n {
				t.Fatalf("%s: expected length %d, got %v", d, n, secret)
			}
			seen := map[string]bool{}
			for _, s := range secret {
				if !slices.Contains(DigitPool[:], s) {
					t.Fatalf("%s: symbol %q outside digit pool", d, s)
				}
				if seen[s] {
					t.Fatalf("%s: repeated symbol %q in %v", d, s, secret)
				}
				seen[s] = true
			}
		}
	}
}

func TestSetupRejectsUnknownDifficulty(t *testing.T) {
	r := NewRound(&seqSource{idx: []int{1}})
	if err := r.Setup("expert"); !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
	if r.State() != StateUninitialized {
		t.Fatalf("expected uninitialized, got %s", r.State())
	}
}

func TestSubmitGuessScores(t *testing.T) {
	cases := []struct {
		guess string
		want  Score
		state State
	}{
		{"3,2,1", Score{Hit: 1, Blow: 2}, StatePlaying},
		{"2,3,1", Score{Hit: 0, Blow: 3}, StatePlaying},
		{"4,5,6", Score{Hit: 0, Blow: 0}, StatePlaying},
		{"1,5,2", Score{Hit: 1, Blow: 1}, StatePlaying},
		{"1,2,3", Score{Hit: 3, Blow: 0}, StateSolved},
	}
	for _, tc := range cases {
		r := newPlayingRound(t, DifficultyNormal, 1, 2, 3)
		got, state, err := r.SubmitGuess(tc.guess)
		if err != nil {
			t.Fatalf("guess %q: %v", tc.guess, err)
		}
		if got != tc.want {
			t.Errorf("guess %q: expected %+v, got %+v", tc.guess, tc.want, got)
		}
		if state != tc.state {
			t.Errorf("guess %q: expected state %s, got %s", tc.guess, tc.state, state)
		}
		if r.Attempts() != 1 {
			t.Errorf("guess %q: expected 1 attempt, got %d", tc.guess, r.Attempts())
		}
	}
}

func TestSubmitGuessRejectsMalformed(t *testing.T) {
	cases := []struct {
		guess string
		want  error
	}{
		{"1,2", ErrGuessLength},
		{"1,2,3,4", ErrGuessLength},
		{"", ErrGuessLength},
		{"123", ErrGuessLength},
		{"1,1,2", ErrGuessDuplicate},
		{"1,a,2", ErrGuessSymbol},
		{"1, 2,3", ErrGuessSymbol},
		{"1,2,10", ErrGuessSymbol},
	}
	for _, tc := range cases {
		r := newPlayingRound(t, DifficultyNormal, 1, 2, 3)
		before := r.Secret()
		_, state, err := r.SubmitGuess(tc.guess)
		if !errors.Is(err, tc.want) {
			t.Fatalf("guess %q: expected %v, got %v", tc.guess, tc.want, err)
		}
		if !errors.Is(err, ErrInvalidGuess) {
			t.Fatalf("guess %q: expected ErrInvalidGuess, got %v", tc.guess, err)
		}
		if state != StatePlaying {
			t.Fatalf("guess %q: expected playing, got %s", tc.guess, state)
		}
		if r.Attempts() != 0 {
			t.Fatalf("guess %q: expected attempts unchanged, got %d", tc.guess, r.Attempts())
		}
		if !slices.Equal(before, r.Secret()) {
			t.Fatalf("guess %q: secret changed from %v to %v", tc.guess, before, r.Secret())
		}
	}
}

func TestScoreBounds(t *testing.T) {
	secret := []string{"0", "4", "7", "9"}
	digits := DigitPool[:]
	for _, a := range digits {
		for _, b := range digits {
			for _, c := range digits {
				for _, d := range digits {
					guess := []string{a, b, c, d}
					if ValidateGuess(guess, 4) != nil {
						continue
					}
					s := scoreGuess(secret, guess)
					if s.Hit < 0 || s.Blow < 0 || s.Hit+s.Blow > len(secret) {
						t.Fatalf("guess %v: score %+v out of bounds", guess, s)
					}
				}
			}
		}
	}
}

func TestRoundLifecycle(t *testing.T) {
	r := newPlayingRound(t, DifficultyNormal, 1, 2, 3, 4)

	if _, err := r.End(); !errors.Is(err, ErrRoundState) {
		t.Fatalf("expected ErrRoundState ending unsolved round, got %v", err)
	}
	for _, g := range []string{"3,2,1", "1,2", "4,5,6", "1,2,3"} {
		_, _, _ = r.SubmitGuess(g)
	}
	if r.State() != StateSolved {
		t.Fatalf("expected solved, got %s", r.State())
	}
	if _, _, err := r.SubmitGuess("1,2,3"); !errors.Is(err, ErrRoundState) {
		t.Fatalf("expected ErrRoundState guessing solved round, got %v", err)
	}

	attempts, err := r.End()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if r.State() != StateUninitialized || r.Attempts() != 0 || len(r.Secret()) != 0 {
		t.Fatalf("expected reset round, got state=%s attempts=%d secret=%v", r.State(), r.Attempts(), r.Secret())
	}

	if err := r.Setup(DifficultyHard); err != nil {
		t.Fatalf("second setup: %v", err)
	}
	if len(r.Secret()) != 4 {
		t.Fatalf("expected hard secret, got %v", r.Secret())
	}
	if err := r.Setup(DifficultyHard); !errors.Is(err, ErrRoundState) {
		t.Fatalf("expected ErrRoundState on double setup, got %v", err)
	}
}
