package game

import (
	"errors"
	"fmt"
)

var (
	ErrNonNumericGuess = errors.New("guess must contain only digits")
	ErrWrongLength     = errors.New("guess has the wrong length")
	ErrDuplicateGuess  = errors.New("guess was already made")

	ErrSessionOver       = errors.New("session is over")
	ErrCodeLength        = errors.New("code length out of range")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// ValidationError describes a rejected guess. Kind is one of the
// ErrNonNumericGuess/ErrWrongLength/ErrDuplicateGuess sentinels.
type ValidationError struct {
	Kind  error
	Guess string
	Got   int // guess length, set for ErrWrongLength
	Want  int // code length, set for ErrWrongLength
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if errors.Is(e.Kind, ErrWrongLength) {
		return fmt.Sprintf("%s: got %d digits, want %d", e.Kind.Error(), e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %q", e.Kind.Error(), e.Guess)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalid(kind error, guess string) error {
	return &ValidationError{Kind: kind, Guess: guess}
}
