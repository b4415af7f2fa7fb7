// internal/game/evaluate.go
//
// Code generation, guess validation and feedback computation.
//
// Scoring is per distinct digit VALUE, not per occurrence:
//   - a digit absent from the code yields no clue;
//   - a digit that matches the code at any shared position yields one exact clue;
//   - otherwise it yields one present clue.
// A guess repeating a digit never earns more than one clue for it. This is not
// classic Mastermind multiset counting and must not be "fixed" into it.

package game

import (
	"fmt"
	"slices"
	"strings"
)

// MaxCodeLength is the longest code whose range [0, 10^L) fits an int64 draw.
const MaxCodeLength = 18

// GenerateCode draws a value uniformly from [0, 10^length) and left-pads it
// with zeros to exactly length digits.
func GenerateCode(length int, rng RNG) (string, error) {
	if length < 1 || length > MaxCodeLength {
		return "", fmt.Errorf("%w: %d (want 1..%d)", ErrCodeLength, length, MaxCodeLength)
	}
	n := rng.Int64N(pow10(length))
	code := fmt.Sprintf("%0*d", length, n)
	if len(code) != length {
		panic(fmt.Sprintf("game: generated code %q has %d digits, want %d", code, len(code), length))
	}
	return code, nil
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// ValidateGuess checks raw against the code and the session history.
// Rules run in order and the first failure wins:
//  1. digits only (ErrNonNumericGuess)
//  2. same length as the code (ErrWrongLength)
//  3. not already guessed (ErrDuplicateGuess)
//
// Surrounding whitespace is ignored. The returned error is a *ValidationError.
func ValidateGuess(raw, secret string, history []Record) (string, error) {
	guess := strings.TrimSpace(raw)
	if !isDigits(guess) {
		return "", invalid(ErrNonNumericGuess, guess)
	}
	if len(guess) != len(secret) {
		return "", &ValidationError{Kind: ErrWrongLength, Guess: guess, Got: len(guess), Want: len(secret)}
	}
	for _, r := range history {
		if r.Guess == guess {
			return "", invalid(ErrDuplicateGuess, guess)
		}
	}
	return guess, nil
}

// isDigits reports whether s is a non-empty run of ASCII 0-9.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// EvaluateGuess scores a validated guess against the secret code.
// An exact match returns one exact clue per position and won=true.
func EvaluateGuess(guess, secret string) (Feedback, bool) {
	if guess == secret {
		fb := make(Feedback, len(secret))
		for i := range fb {
			fb[i] = ClueExact
		}
		return fb, true
	}

	clues := make(map[byte]Clue, len(guess))
	for i := 0; i < len(guess); i++ {
		d := guess[i]
		if strings.IndexByte(secret, d) < 0 {
			continue
		}
		if i < len(secret) && secret[i] == d {
			clues[d] = ClueExact
			continue
		}
		if _, seen := clues[d]; !seen {
			clues[d] = CluePresent
		}
	}

	fb := make(Feedback, 0, len(clues))
	for _, c := range clues {
		fb = append(fb, c)
	}
	slices.Sort(fb)
	return fb, false
}
