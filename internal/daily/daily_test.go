package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/codebreaker/internal/game"
)

func code(t *testing.T, date time.Time, salt, key string) string {
	t.Helper()
	c, err := game.GenerateCode(4, NewRNG(date, salt, key))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	if got := DateKey(time.Date(2026, 10, 19, 5, 0, 0, 0, loc)); got != "2026-10-18" {
		t.Fatalf("DateKey = %q", got)
	}
}

func TestSameDaySameCode(t *testing.T) {
	morning := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)
	if a, b := code(t, morning, "salt", "medium"), code(t, evening, "salt", "medium"); a != b {
		t.Fatalf("codes differ within a day: %q vs %q", a, b)
	}
}

func TestCodesVary(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	base := code(t, day, "salt", "medium")
	seen := map[string]bool{base: true}
	for i := 1; i <= 5; i++ {
		seen[code(t, day.AddDate(0, 0, i), "salt", "medium")] = true
	}
	seen[code(t, day, "other", "medium")] = true
	seen[code(t, day, "salt", "hard")] = true
	// 8 draws over 10^4 codes; a handful of collisions would still leave plenty.
	if len(seen) < 5 {
		t.Fatalf("daily codes barely vary: %v", seen)
	}
}
