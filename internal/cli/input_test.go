package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLineReaderReadsUntilEOF(t *testing.T) {
	lr := newLineReader(strings.NewReader("one\ntwo\n"))
	ctx := context.Background()
	for _, want := range []string{"one", "two"} {
		got, err := lr.readLine(ctx)
		if err != nil || got != want {
			t.Fatalf("readLine = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := lr.readLine(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("readLine at end = %v, want io.EOF", err)
	}
}

func TestLineReaderExitsAfterCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	lr := newLineReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lr.readLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("readLine error = %v, want context.Canceled", err)
	}

	// A line arriving after the reader was abandoned must not wedge the
	// goroutine on an unread send.
	go func() { _, _ = pw.Write([]byte("late\n")) }()
	select {
	case <-lr.exited:
	case <-time.After(2 * time.Second):
		t.Fatalf("reader goroutine still running after cancel")
	}

	if _, err := lr.readLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("readLine after stop = %v, want io.EOF", err)
	}
}
