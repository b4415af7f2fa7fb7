package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/robalobadob/codebreaker/internal/config"
)

func testConfig() config.Config {
	return config.Config{LogLevel: "warn", Color: config.ColorNever, StatsBackend: "memory"}
}

func TestDifficultiesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"difficulties"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("difficulties failed: %v", err)
	}
	for _, want := range []string{"1. easy", "2. medium", "3. hard"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPlayRejectsUnknownDifficulty(t *testing.T) {
	cmd := newRootCmd(testConfig())
	cmd.SetArgs([]string{"play", "--difficulty", "impossible"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown difficulty")
	}
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "chatty"
	if _, err := setupLogging(cfg); err == nil {
		t.Fatalf("expected error")
	}
}
