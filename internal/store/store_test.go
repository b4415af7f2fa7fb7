package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/codebreaker/internal/game"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(context.Background())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func result(id string, o game.Outcome) Result {
	return Result{
		SessionID:  id,
		Difficulty: "easy",
		Outcome:    o,
		Guesses:    4,
		Elapsed:    1500 * time.Millisecond,
		FinishedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
}

func TestStatsAndStreak(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			seq := []game.Outcome{game.Won, game.Won, game.Lost, game.Won, game.Won, game.Won}
			for i, o := range seq {
				if err := st.Save(ctx, result(string(rune('a'+i)), o)); err != nil {
					t.Fatalf("Save #%d failed: %v", i, err)
				}
			}
			got, err := st.Stats(ctx)
			if err != nil {
				t.Fatalf("Stats failed: %v", err)
			}
			want := Stats{Played: 6, Wins: 5, Streak: 3, BestStreak: 3}
			if got != want {
				t.Fatalf("Stats = %+v, want %+v", got, want)
			}

			if err := st.Save(ctx, result("g", game.Lost)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, _ = st.Stats(ctx)
			if got.Streak != 0 || got.BestStreak != 3 {
				t.Fatalf("after loss Stats = %+v", got)
			}
		})
	}
}

func TestSaveIsIdempotentPerSession(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if err := st.Save(ctx, result("same", game.Won)); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}
			got, _ := st.Stats(ctx)
			if got.Played != 1 {
				t.Fatalf("Played = %d, want 1", got.Played)
			}
		})
	}
}

func TestSaveRejectsUnfinished(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Save(ctx, result("x", game.InProgress)); !errors.Is(err, ErrUnfinished) {
				t.Fatalf("Save error = %v, want ErrUnfinished", err)
			}
			if err := st.Save(ctx, result("", game.Won)); err == nil {
				t.Fatalf("expected error for missing session id")
			}
		})
	}
}

func TestRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []string{"one", "two", "three"} {
				if err := st.Save(ctx, result(id, game.Lost)); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}
			got, err := st.Recent(ctx, 2)
			if err != nil {
				t.Fatalf("Recent failed: %v", err)
			}
			if len(got) != 2 || got[0].SessionID != "three" || got[1].SessionID != "two" {
				t.Fatalf("Recent = %+v", got)
			}
			r := got[0]
			if r.Outcome != game.Lost || r.Guesses != 4 || r.Elapsed != 1500*time.Millisecond || r.Difficulty != "easy" {
				t.Fatalf("round-tripped result = %+v", r)
			}
		})
	}
}

func TestResultOf(t *testing.T) {
	s, err := game.NewSession(game.Difficulty{Key: "easy", Length: 3, MaxGuesses: 2}, game.NewSeededRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ResultOf(s, time.Now()); !errors.Is(err, ErrUnfinished) {
		t.Fatalf("ResultOf in-progress error = %v", err)
	}
	for _, g := range []string{"a", "000", "001", "002"} {
		_, _ = s.Submit(g)
		if s.IsTerminal() {
			break
		}
	}
	r, err := ResultOf(s, time.Now())
	if err != nil {
		t.Fatalf("ResultOf failed: %v", err)
	}
	if r.SessionID != s.ID() || r.Difficulty != "easy" || r.Guesses != len(s.History()) || r.Outcome != s.Outcome() {
		t.Fatalf("ResultOf = %+v", r)
	}
}
