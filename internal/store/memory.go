// internal/store/memory.go
//
// Results store for finished games.
// The store lives only as long as the process: it backs the "games played /
// wins / streak" line on the game-over screen across replays in one run.
//
// Implementations:
//   - memory (this file): slice guarded by RWMutex.
//   - sqlite (sqlite.go): in-memory SQLite database with embedded migrations.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robalobadob/codebreaker/internal/game"
)

// ErrUnfinished is returned when saving a result for a session still in progress.
var ErrUnfinished = errors.New("session is not finished")

// Result is the summary of one finished session.
type Result struct {
	SessionID  string
	Difficulty string
	Outcome    game.Outcome
	Guesses    int
	Elapsed    time.Duration
	FinishedAt time.Time
}

// Stats aggregates all saved results.
type Stats struct {
	Played     int
	Wins       int
	Streak     int // consecutive wins ending with the latest game
	BestStreak int
}

// Store defines the persistence interface for finished sessions.
type Store interface {
	// Save records a result. Saving the same SessionID twice is a no-op.
	Save(ctx context.Context, r Result) error

	// Stats summarizes every saved result.
	Stats(ctx context.Context) (Stats, error)

	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]Result, error)

	Close() error
}

// ResultOf builds a Result from a finished session.
func ResultOf(s *game.Session, now time.Time) (Result, error) {
	if !s.IsTerminal() {
		return Result{}, ErrUnfinished
	}
	return Result{
		SessionID:  s.ID(),
		Difficulty: s.Difficulty().Key,
		Outcome:    s.Outcome(),
		Guesses:    len(s.History()),
		Elapsed:    now.Sub(s.Started()),
		FinishedAt: now.UTC(),
	}, nil
}

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results and seen
	results []Result     // in save order
	seen    map[string]struct{}
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{seen: make(map[string]struct{})}
}

func (m *memory) Save(ctx context.Context, r Result) error {
	if err := checkResult(r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[r.SessionID]; ok {
		return nil
	}
	m.seen[r.SessionID] = struct{}{}
	m.results = append(m.results, r)
	return nil
}

func (m *memory) Stats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	outcomes := make([]game.Outcome, len(m.results))
	for i, r := range m.results {
		outcomes[i] = r.Outcome
	}
	return summarize(outcomes), nil
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = defaultRecent
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, min(limit, len(m.results)))
	for i := len(m.results) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.results[i])
	}
	return out, nil
}

func (m *memory) Close() error { return nil }

const defaultRecent = 20

func checkResult(r Result) error {
	if r.SessionID == "" {
		return errors.New("result: missing session id")
	}
	if r.Outcome != game.Won && r.Outcome != game.Lost {
		return fmt.Errorf("result %s: %w", r.SessionID, ErrUnfinished)
	}
	return nil
}

// summarize folds outcomes, oldest first, into Stats.
func summarize(outcomes []game.Outcome) Stats {
	var st Stats
	for _, o := range outcomes {
		st.Played++
		if o == game.Won {
			st.Wins++
			st.Streak++
			st.BestStreak = max(st.BestStreak, st.Streak)
		} else {
			st.Streak = 0
		}
	}
	return st
}
