package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/five82/phosphor/internal/entropy"
	"github.com/five82/phosphor/internal/state"
)

// steppingClock advances by step on every read.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// lineWriter calls done once it has seen want lines.
type lineWriter struct {
	buf   bytes.Buffer
	lines int
	want  int
	done  func()
}

func (w *lineWriter) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	w.lines += bytes.Count(p, []byte("\n"))
	if w.lines >= w.want {
		w.done()
	}
	return n, err
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func plainOptions() Options {
	return Options{
		Source:        entropy.New(3),
		Lines:         fixedLine("jmp main"),
		Clock:         &steppingClock{now: start, step: 50 * time.Millisecond},
		Banner:        []string{"BOOT ROM v1.09", "READY."},
		FrameInterval: time.Millisecond,
	}
}

func TestRunPlain_WritesCompletedLines(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	w := &lineWriter{want: 5, done: cancel}
	if err := RunPlain(ctx, plainOptions(), w); err != nil {
		t.Fatalf("RunPlain returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(w.buf.String(), "\n"), "\n")
	if len(lines) < 5 {
		t.Fatalf("got %d lines, want at least 5: %q", len(lines), lines)
	}
	if lines[0] != "BOOT ROM v1.09" || lines[1] != "READY." {
		t.Fatalf("banner = %q, want boot lines first", lines[:2])
	}
	for _, line := range lines[2:] {
		if line != "jmp main" {
			t.Fatalf("line = %q, want %q", line, "jmp main")
		}
	}
}

func TestRunPlain_StopsOnWriteError(t *testing.T) {
	boom := errors.New("broken pipe")
	err := RunPlain(context.Background(), plainOptions(), failingWriter{err: boom})
	if err == nil {
		t.Fatalf("RunPlain returned nil error, want write error")
	}
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "write output") {
		t.Fatalf("RunPlain error = %v, want wrapped write error", err)
	}
}

func TestPlainSurface_FlushesInOrder(t *testing.T) {
	var buf bytes.Buffer
	p := &plainSurface{w: &buf, lineHeight: 18}

	first := &state.Line{Text: "one", State: state.Typing}
	p.AppendLine(first)
	p.AppendLine(&state.Line{Text: "two", State: state.Complete})
	if buf.Len() != 0 {
		t.Fatalf("wrote %q before the typing line completed", buf.String())
	}

	first.State = state.Complete
	p.SetCursor(nil)
	if got := buf.String(); got != "one\ntwo\n" {
		t.Fatalf("output = %q, want %q", got, "one\ntwo\n")
	}
	if vh, lh := p.Metrics(); vh != 0 || lh != 18 {
		t.Fatalf("Metrics() = %v, %v, want 0, 18", vh, lh)
	}
}
