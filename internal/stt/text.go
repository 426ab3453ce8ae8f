package stt

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"
)

// TextRecognizer reads one line of input per listen attempt. It is the
// fallback backend for environments without a microphone and the primary
// backend for scripted runs.
//
// One long-lived goroutine owns the input stream, so an attempt that times
// out does not leave a stale read behind: the line typed afterwards is
// delivered to the next Listen instead of being lost.
type TextRecognizer struct {
	lines <-chan string
}

// NewTextRecognizer wraps an input stream, typically stdin.
func NewTextRecognizer(r io.Reader) *TextRecognizer {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines <- trimmed
			}
			if err != nil {
				return
			}
		}
	}()
	return &TextRecognizer{lines: lines}
}

func (t *TextRecognizer) Name() string {
	return "text"
}

// Listen blocks for one line of input. Timeout and end-of-input are reported
// as silence, matching the recognizer contract.
func (t *TextRecognizer) Listen(ctx context.Context, req Request) (string, error) {
	var timeoutCh <-chan time.Time
	if req.Timeout > 0 {
		timer := time.NewTimer(req.Timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timeoutCh:
		return "", nil
	case line, ok := <-t.lines:
		if !ok {
			return "", nil
		}
		return line, nil
	}
}
