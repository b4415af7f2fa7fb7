package cli

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// lineReader delivers input lines from a background goroutine so a blocked
// read can be abandoned when ctx is cancelled.
//
// Once a read is abandoned the reader is stopped: later reads report io.EOF
// and the goroutine exits as soon as its pending Scan returns, instead of
// blocking on a send nobody will receive.
type lineReader struct {
	lines  chan string
	err    error // read after lines is closed
	done   chan struct{}
	stop   sync.Once
	exited chan struct{} // closed when the goroutine returns
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines:  make(chan string),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(lr.exited)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = sc.Err()
		close(lr.lines)
	}()
	return lr
}

// readLine returns the next line, io.EOF at end of input, or ctx.Err().
func (lr *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-lr.done:
		return "", io.EOF
	default:
	}
	select {
	case <-ctx.Done():
		lr.stop.Do(func() { close(lr.done) })
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}
