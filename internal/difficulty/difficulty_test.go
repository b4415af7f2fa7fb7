package difficulty

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/codebreaker/internal/game"
)

func TestDefaultTable(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	want := []struct {
		key    string
		length int
	}{{"easy", 3}, {"medium", 4}, {"hard", 5}}
	if len(tbl) != len(want) {
		t.Fatalf("len = %d, want %d", len(tbl), len(want))
	}
	for i, w := range want {
		if tbl[i].Key != w.key || tbl[i].Length != w.length || tbl[i].MaxGuesses != 10 {
			t.Errorf("entry %d = %+v", i, tbl[i])
		}
	}
}

func TestLookup(t *testing.T) {
	tbl, _ := Default()
	cases := []struct {
		choice string
		want   string
		err    error
	}{
		{"1", "easy", nil},
		{" 3 ", "hard", nil},
		{"medium", "medium", nil},
		{"HARD", "hard", nil},
		{"Easy", "easy", nil},
		{"0", "", ErrUnknown},
		{"4", "", ErrUnknown},
		{"expert", "", ErrUnknown},
		{"", "", ErrUnknown},
	}
	for _, tc := range cases {
		d, err := tbl.Lookup(tc.choice)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Lookup(%q) error = %v, want %v", tc.choice, err, tc.err)
			}
			continue
		}
		if err != nil || d.Key != tc.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", tc.choice, d.Key, err, tc.want)
		}
	}
}

func TestParseJSON(t *testing.T) {
	raw := []byte(`[{"key":"Blitz","name":"Blitz","length":6,"max_guesses":4}]`)
	tbl, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tbl[0].Key != "blitz" || tbl[0].Length != 6 || tbl[0].MaxGuesses != 4 {
		t.Fatalf("entry = %+v", tbl[0])
	}
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	raw := []byte(`[{"key":"easy","length":3,"maxGuesses":10}]`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatalf("expected error for an unknown field")
	}
	if !strings.Contains(err.Error(), "maxGuesses") {
		t.Fatalf("error does not name the field: %v", err)
	}
}

func TestParseRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"empty":         `[]`,
		"blank":         ``,
		"unknown field": `[{key: a, length: 3, max_guesses: 5, colour: red}]`,
		"not a list":    `key: easy`,
		"missing key":   `[{name: X, length: 3, max_guesses: 5}]`,
		"too short":     `[{key: a, length: 2, max_guesses: 5}]`,
		"too long":      `[{key: a, length: 19, max_guesses: 5}]`,
		"no budget":     `[{key: a, length: 3, max_guesses: 0}]`,
		"duplicate key": `[{key: a, length: 3, max_guesses: 5}, {key: A, length: 4, max_guesses: 5}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(raw)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := Parse([]byte(`[{key: a, length: 2, max_guesses: 5}]`)); !errors.Is(err, game.ErrInvalidDifficulty) {
		t.Fatalf("bad length error = %v, want ErrInvalidDifficulty", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte("- key: tiny\n  length: 3\n  max_guesses: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tbl) != 1 || tbl[0].Name != "tiny" {
		t.Fatalf("table = %+v", tbl)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
