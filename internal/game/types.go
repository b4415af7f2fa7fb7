// internal/game/types.go
//
// Core type definitions for the codebreaker engine.
// Defines:
//   - Clue / Feedback: per-digit result of a guess (exact/present).
//   - Outcome: session result (in progress, won, lost).
//   - Difficulty: code length + guess budget chosen by the player.
//   - Record: one (guess, feedback) entry in a session's history.

package game

import "strings"

// Clue is the evaluation result for one distinct digit value of a guess.
//   - ClueExact:   the digit sits at a shared position in guess and code.
//   - CluePresent: the digit occurs in both, but never at a shared position.
//
// The numeric order is the display order: exact clues sort first.
type Clue uint8

const (
	ClueExact Clue = iota
	CluePresent
)

// String returns the single-letter symbol used by plain output.
func (c Clue) String() string {
	switch c {
	case ClueExact:
		return "c"
	case CluePresent:
		return "w"
	default:
		return "?"
	}
}

// Feedback is the sorted clue sequence for one guess.
type Feedback []Clue

// String renders the feedback with plain symbols, e.g. "ccw".
func (f Feedback) String() string {
	var b strings.Builder
	for _, c := range f {
		b.WriteString(c.String())
	}
	return b.String()
}

// Counts returns how many exact and present clues f holds.
func (f Feedback) Counts() (exact, present int) {
	for _, c := range f {
		if c == ClueExact {
			exact++
		} else {
			present++
		}
	}
	return exact, present
}

// Outcome is the coarse state of a session.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Difficulty bundles the code length and the guess budget.
type Difficulty struct {
	Key        string `yaml:"key"`         // stable identifier, e.g. "easy"
	Name       string `yaml:"name"`        // display name
	Length     int    `yaml:"length"`      // digits in the secret code
	MaxGuesses int    `yaml:"max_guesses"` // guess budget
}

// Record is one accepted guess and the feedback it produced.
type Record struct {
	Guess    string
	Feedback Feedback
}
