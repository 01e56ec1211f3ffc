// internal/session/session.go
//
// Session controller: drives rounds until the player chooses to exit.
// Flow per round:
//   - banner → difficulty selection → setup
//   - guess loop (invalid input re-prompts; feedback until solved)
//   - end-of-round report and history record
//   - continuation choice: "play again" loops, "exit" prints the summary
//     and farewell, then Run returns nil.

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"github.com/robalobadob/hitandblow/internal/console"
	"github.com/robalobadob/hitandblow/internal/game"
	"github.com/robalobadob/hitandblow/internal/i18n"
	"github.com/robalobadob/hitandblow/internal/store"
)

// Title is the game name shown in the round banner.
const Title = "hit and blow"

// Action is the post-round choice.
type Action string

const (
	ActionPlayAgain Action = "play again"
	ActionExit      Action = "exit"
)

// Actions lists the continuation options in prompt order.
var Actions = []Action{ActionPlayAgain, ActionExit}

// ErrUnreachableChoice is returned when the continuation choice is outside Actions.
var ErrUnreachableChoice = errors.New("unreachable continuation choice")

// Controller owns the round engine for the lifetime of the process.
type Controller struct {
	console *console.Console
	round   *game.Round
	history store.Store
	p       *message.Printer
	now     func() time.Time
}

// New constructs a Controller.
func New(c *console.Console, round *game.Round, history store.Store, p *message.Printer) *Controller {
	return &Controller{console: c, round: round, history: history, p: p, now: time.Now}
}

// Run plays rounds until the player picks "exit".
// Returns nil on exit; any other return is fatal.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := c.playRound(ctx); err != nil {
			return err
		}

		action, err := console.Select(c.console, c.p.Sprintf(i18n.KeyContinuePrompt), Actions)
		if err != nil {
			return err
		}
		switch action {
		case ActionPlayAgain:
			continue
		case ActionExit:
			return c.finish(ctx)
		default:
			return fmt.Errorf("%w: %q", ErrUnreachableChoice, string(action))
		}
	}
}

// playRound runs one round from banner to the solved report.
func (c *Controller) playRound(ctx context.Context) error {
	if err := c.console.PrintLine(c.p.Sprintf(i18n.KeyBanner, Title)); err != nil {
		return err
	}

	d, err := console.Select(c.console, c.p.Sprintf(i18n.KeyDifficultyPrompt), game.Difficulties)
	if err != nil {
		return err
	}
	if err := c.round.Setup(d); err != nil {
		return fmt.Errorf("setup round: %w", err)
	}
	n, err := d.Length()
	if err != nil {
		return err
	}

	for c.round.State() == game.StatePlaying {
		raw, err := c.console.Input(c.p.Sprintf(i18n.KeyGuessPrompt, n))
		if err != nil {
			return err
		}
		score, state, err := c.round.SubmitGuess(raw)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			if err := c.console.PrintLine(c.p.Sprintf(i18n.KeyInvalidGuess)); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("submit guess: %w", err)
		}
		if state == game.StatePlaying {
			if err := c.console.PrintLine(c.p.Sprintf(i18n.KeyScore, score.Hit, score.Blow)); err != nil {
				return err
			}
		}
	}

	attempts, err := c.round.End()
	if err != nil {
		return fmt.Errorf("end round: %w", err)
	}
	if err := c.console.PrintLine(c.p.Sprintf(i18n.KeySolved, attempts)); err != nil {
		return err
	}

	res := store.Result{Difficulty: d, Attempts: attempts, FinishedAt: c.now()}
	if err := c.history.Record(ctx, res); err != nil {
		log.Warn().Err(err).Msg("record round")
	}
	return nil
}

// finish prints the session summary and the farewell line.
func (c *Controller) finish(ctx context.Context) error {
	stats, err := c.history.Summary(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("history summary")
	}
	if len(stats) > 0 {
		total := 0
		for _, s := range stats {
			total += s.Rounds
		}
		if err := c.console.PrintLine(c.p.Sprintf(i18n.KeySummaryHeader, total)); err != nil {
			return err
		}
		for _, s := range stats {
			if err := c.console.PrintLine(c.p.Sprintf(i18n.KeySummaryRow, string(s.Difficulty), s.Rounds, s.BestAttempts)); err != nil {
				return err
			}
		}
	}
	return c.console.PrintLine(c.p.Sprintf(i18n.KeyFarewell))
}
