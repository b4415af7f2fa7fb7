// internal/cli/game.go
//
// Driving loop for terminal play.
// Responsibilities:
//   - Walk each session through AwaitingDifficulty → AwaitingGuess ⟲ → Won|Lost.
//   - Re-prompt on invalid menu choices and rejected guesses.
//   - Save finished sessions to the results store and show running stats
//     plus the recent games of this run.
//   - Log game events at debug; the core itself does no I/O.
//   - Offer a replay; every replay is a brand new session.
//
// End of input or a cancelled context (Ctrl-C) ends play without an error.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/codebreaker/internal/difficulty"
	"github.com/robalobadob/codebreaker/internal/game"
	"github.com/robalobadob/codebreaker/internal/render"
	"github.com/robalobadob/codebreaker/internal/store"
)

// Phase is the driver-level state of a session.
type Phase int

const (
	AwaitingDifficulty Phase = iota
	AwaitingGuess
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case AwaitingDifficulty:
		return "awaiting_difficulty"
	case AwaitingGuess:
		return "awaiting_guess"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// phaseOf maps a session's outcome onto a driver phase.
func phaseOf(s *game.Session) Phase {
	switch s.Outcome() {
	case game.Won:
		return PhaseWon
	case game.Lost:
		return PhaseLost
	default:
		return AwaitingGuess
	}
}

// Game wires input, rendering, the difficulty table and the results store.
type Game struct {
	in      *lineReader
	out     render.Renderer
	table   difficulty.Table
	results store.Store
	rng     game.RNG

	// Preset skips the menu when non-nil.
	Preset *game.Difficulty
	// RNGFor, when set, supplies the generator for each new session
	// (daily mode derives it from the date and the chosen difficulty).
	RNGFor func(d game.Difficulty) game.RNG
	// Now stamps results; defaults to time.Now.
	Now func() time.Time
}

// New builds a driver reading lines from in.
func New(in io.Reader, out render.Renderer, table difficulty.Table, results store.Store, rng game.RNG) *Game {
	return &Game{
		in:      newLineReader(in),
		out:     out,
		table:   table,
		results: results,
		rng:     rng,
		Now:     time.Now,
	}
}

// ErrQuit is returned by PlayOnce when input ends or ctx is cancelled.
var ErrQuit = errors.New("quit")

// Run plays sessions until the player declines a replay, input ends or ctx
// is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.out.Goodbye()
	for {
		_, err := g.PlayOnce(ctx)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		again, err := g.askReplay(ctx)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// PlayOnce runs one complete session and returns it once it is terminal.
func (g *Game) PlayOnce(ctx context.Context) (*game.Session, error) {
	d, err := g.chooseDifficulty(ctx)
	if err != nil {
		return nil, err
	}
	rng := g.rng
	if g.RNGFor != nil {
		rng = g.RNGFor(d)
	}
	s, err := game.NewSession(d, rng)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	log.Debug().Str("session", s.ID()).Str("difficulty", d.Key).Int("length", d.Length).Msg("session started")

	var reason error
	for phaseOf(s) == AwaitingGuess {
		if err := g.out.Board(s); err != nil {
			return s, err
		}
		g.out.Prompt(reason)
		line, err := g.readLine(ctx)
		if err != nil {
			return s, err
		}
		var fb game.Feedback
		fb, reason = s.Submit(line)
		if reason != nil {
			log.Debug().Str("session", s.ID()).Err(reason).Msg("guess rejected")
			continue
		}
		log.Debug().
			Str("session", s.ID()).
			Int("attempt", len(s.History())).
			Str("feedback", fb.String()).
			Stringer("state", s.Outcome()).
			Msg("guess evaluated")
	}

	if err := g.out.Board(s); err != nil {
		return s, err
	}
	st, recent := g.record(ctx, s)
	g.out.GameOver(s, st, recent)
	log.Debug().Str("session", s.ID()).Stringer("phase", phaseOf(s)).Msg("game over")
	return s, nil
}

// chooseDifficulty shows the menu until a valid choice is made.
func (g *Game) chooseDifficulty(ctx context.Context) (game.Difficulty, error) {
	if g.Preset != nil {
		return *g.Preset, nil
	}
	invalid := false
	for {
		g.out.Menu(g.table, invalid)
		line, err := g.readLine(ctx)
		if err != nil {
			return game.Difficulty{}, err
		}
		d, err := g.table.Lookup(line)
		if err == nil {
			return d, nil
		}
		log.Debug().Err(err).Msg("difficulty rejected")
		invalid = true
	}
}

// recentGames is how many past results the game-over screen lists.
const recentGames = 5

// record saves the result and returns fresh stats with the latest results.
// Store failures are logged and never end the game.
func (g *Game) record(ctx context.Context, s *game.Session) (store.Stats, []store.Result) {
	res, err := store.ResultOf(s, g.Now())
	if err != nil {
		log.Warn().Err(err).Str("session", s.ID()).Msg("build result")
		return store.Stats{}, nil
	}
	if err := g.results.Save(ctx, res); err != nil {
		log.Warn().Err(err).Str("session", s.ID()).Msg("save result")
	}
	st, err := g.results.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load stats")
	}
	recent, err := g.results.Recent(ctx, recentGames)
	if err != nil {
		log.Warn().Err(err).Msg("load recent results")
	}
	return st, recent
}

func (g *Game) askReplay(ctx context.Context) (bool, error) {
	g.out.ReplayPrompt()
	line, err := g.readLine(ctx)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// readLine maps end of input and cancellation to ErrQuit.
func (g *Game) readLine(ctx context.Context) (string, error) {
	line, err := g.in.readLine(ctx)
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", ErrQuit
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
}
