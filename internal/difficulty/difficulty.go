// internal/difficulty/difficulty.go
//
// Provides the difficulty table for the game.
//
// Responsibilities:
//   - Load the table from a file (DIFFICULTIES_FILE) or fall back to the embedded default.
//   - Validate entries (length 3..18, positive guess budget, unique keys).
//   - Resolve a player's menu choice (number, key or name) to a Difficulty.
//
// File format:
//   A YAML (or JSON, which YAML accepts) list of
//   {key, name, length, max_guesses} objects. Menu numbers follow list order.
//   Any other field name is rejected, so a misspelt max_guesses fails loudly.
//
// The table is data only: it carries no colors or other presentation hints.

package difficulty

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/codebreaker/assets"
	"github.com/robalobadob/codebreaker/internal/game"
)

// ErrUnknown is returned when a choice matches no entry.
var ErrUnknown = errors.New("unknown difficulty")

// Table is an ordered list of difficulties.
type Table []game.Difficulty

var (
	defaultOnce  sync.Once
	defaultTable Table
	defaultErr   error
)

// Default returns the embedded table, parsed once.
func Default() (Table, error) {
	defaultOnce.Do(func() {
		raw, err := assets.Difficulties()
		if err != nil {
			defaultErr = fmt.Errorf("read embedded difficulties: %w", err)
			return
		}
		defaultTable, defaultErr = Parse(raw)
	})
	return defaultTable, defaultErr
}

// Load reads the table from path, or returns Default when path is empty.
func Load(path string) (Table, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read difficulties %s: %w", path, err)
	}
	t, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a table.
func Parse(raw []byte) (Table, error) {
	var t Table
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode difficulties: %w", err)
	}
	if len(t) == 0 {
		return nil, errors.New("difficulty table is empty")
	}

	seen := make(map[string]struct{}, len(t))
	for i := range t {
		d := &t[i]
		d.Key = strings.ToLower(strings.TrimSpace(d.Key))
		if d.Key == "" {
			return nil, fmt.Errorf("difficulty #%d: missing key", i+1)
		}
		if d.Name == "" {
			d.Name = d.Key
		}
		if _, dup := seen[d.Key]; dup {
			return nil, fmt.Errorf("difficulty #%d: duplicate key %q", i+1, d.Key)
		}
		seen[d.Key] = struct{}{}
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Lookup resolves a menu choice: a 1-based number, a key or a display name.
func (t Table) Lookup(choice string) (game.Difficulty, error) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(t) {
			return t[n-1], nil
		}
		return game.Difficulty{}, fmt.Errorf("%w: %q", ErrUnknown, choice)
	}
	for _, d := range t {
		if strings.EqualFold(d.Key, choice) || strings.EqualFold(d.Name, choice) {
			return d, nil
		}
	}
	return game.Difficulty{}, fmt.Errorf("%w: %q", ErrUnknown, choice)
}
