// internal/game/engine.go
//
// Session state for a single play-through.
// Responsibilities:
//   - Create sessions with a freshly generated secret code.
//   - Record accepted guesses and their feedback in order.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - History only grows by append; callers get copies, and recorded
//     feedback is never shared with them.
//   - No I/O here: logging belongs to the driver.
//   - The secret is revealed only once the session is over.
//   - Replays always build a new Session; nothing carries over.

package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Session is the state of one game: secret, budget, history and outcome.
type Session struct {
	id          string
	difficulty  Difficulty
	secret      string
	history     []Record
	outcome     Outcome
	lastInvalid bool
	started     time.Time
}

// NewSession generates a secret code for d and starts a fresh session.
func NewSession(d Difficulty, rng RNG) (*Session, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	code, err := GenerateCode(d.Length, rng)
	if err != nil {
		return nil, err
	}
	return newSession(d, code), nil
}

// newSession builds a session around a known code.
func newSession(d Difficulty, code string) *Session {
	return &Session{
		id:         uuid.NewString(),
		difficulty: d,
		secret:     code,
		history:    make([]Record, 0, d.MaxGuesses),
		started:    time.Now(),
	}
}

// Validate checks the bounds a session relies on.
func (d Difficulty) Validate() error {
	if d.Length < 3 || d.Length > MaxCodeLength {
		return fmt.Errorf("%w: %q length %d (want 3..%d)", ErrInvalidDifficulty, d.Key, d.Length, MaxCodeLength)
	}
	if d.MaxGuesses < 1 {
		return fmt.Errorf("%w: %q max guesses %d", ErrInvalidDifficulty, d.Key, d.MaxGuesses)
	}
	return nil
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Difficulty() Difficulty { return s.difficulty }
func (s *Session) Outcome() Outcome       { return s.outcome }
func (s *Session) Started() time.Time     { return s.started }

// IsTerminal reports whether the player has won or used the whole budget.
func (s *Session) IsTerminal() bool { return s.outcome != InProgress }

// Remaining is the number of guesses left.
func (s *Session) Remaining() int { return s.difficulty.MaxGuesses - len(s.history) }

// LastInvalid reports whether the most recent submission was rejected.
// It only drives the prompt text.
func (s *Session) LastInvalid() bool { return s.lastInvalid }

// History returns a deep copy of the recorded guesses in guess order.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	for i, r := range s.history {
		out[i] = Record{Guess: r.Guess, Feedback: slices.Clone(r.Feedback)}
	}
	return out
}

// Reveal returns the secret code once the session is over.
func (s *Session) Reveal() (string, bool) {
	if !s.IsTerminal() {
		return "", false
	}
	return s.secret, true
}

// Record appends an accepted guess and updates the outcome.
// Callers pass only validated, non-duplicate guesses; calls on a finished
// session are ignored.
func (s *Session) Record(guess string, fb Feedback) {
	if s.IsTerminal() {
		return
	}
	s.history = append(s.history, Record{Guess: guess, Feedback: slices.Clone(fb)})
	switch {
	case guess == s.secret:
		s.outcome = Won
	case len(s.history) >= s.difficulty.MaxGuesses:
		s.outcome = Lost
	}
}

// Submit validates, scores and records raw in one step.
// Returns the feedback, or a *ValidationError (history untouched), or
// ErrSessionOver.
func (s *Session) Submit(raw string) (Feedback, error) {
	if s.IsTerminal() {
		return nil, ErrSessionOver
	}
	guess, err := ValidateGuess(raw, s.secret, s.history)
	if err != nil {
		s.lastInvalid = true
		return nil, err
	}
	s.lastInvalid = false

	fb, _ := EvaluateGuess(guess, s.secret)
	s.Record(guess, fb)
	return fb, nil
}
