package state

import (
	"math"
	"time"
)

// TypingState tracks the line currently being revealed. At most one line is
// active at a time.
type TypingState struct {
	Active     *Line
	Target     []rune
	CharIndex  int
	NextCharAt time.Time
}

// Remaining reports how many target runes are still hidden.
func (t TypingState) Remaining() int {
	return max(0, len(t.Target)-t.CharIndex)
}

// ScrollState holds the eased scroll offset and the offset it is heading to.
// Both fields stay non-negative.
type ScrollState struct {
	Current float64
	Target  float64
}

// JitterState holds the single pending-or-active jitter burst. A zero
// NextTriggerAt means no burst has been scheduled yet.
type JitterState struct {
	NextTriggerAt time.Time
	ActiveUntil   time.Time
	OffsetX       float64
	OffsetY       float64
}

// Active reports whether now falls inside the current burst window.
func (j JitterState) Active(now time.Time) bool {
	return now.Before(j.ActiveUntil)
}

// Offset returns the burst offset while it is active and (0, 0) otherwise.
func (j JitterState) Offset(now time.Time) (x, y float64) {
	if j.Active(now) {
		return j.OffsetX, j.OffsetY
	}
	return 0, 0
}

// Stats counts what the animation has done so far.
type Stats struct {
	Ticks     uint64
	Revealed  uint64
	Completed uint64
	Evicted   uint64
}

// Context is the complete animation state. It is owned by a single driver
// and is never shared across goroutines.
type Context struct {
	Lines          *LineBuffer
	ViewportHeight float64
	Typing         TypingState
	Scroll         ScrollState
	Jitter         JitterState
	Stats          Stats

	// Version increases whenever the visible text changes.
	Version uint64
}

// NewContext returns an empty context whose buffer keeps at least
// minCapacity lines.
func NewContext(minCapacity int) *Context {
	return &Context{Lines: NewLineBuffer(minCapacity)}
}

// Resize records new viewport metrics and recomputes buffer capacity. A
// negative or non-finite viewport height counts as zero.
func (c *Context) Resize(viewportHeight, lineHeight float64) {
	if math.IsNaN(viewportHeight) || math.IsInf(viewportHeight, 0) || viewportHeight < 0 {
		viewportHeight = 0
	}
	c.ViewportHeight = viewportHeight
	c.Lines.RecomputeCapacity(viewportHeight, lineHeight)
}

// Touch marks the visible text as changed.
func (c *Context) Touch() {
	c.Version++
}

// Snapshot is a read-only copy of the context for renderers.
type Snapshot struct {
	Lines       []string
	ActiveIndex int // -1 when no line is being typed
	Scroll      ScrollState
	LineHeight  float64
	Version     uint64
	Stats       Stats
}

// Snapshot returns a copy that does not alias the buffer.
func (c *Context) Snapshot() Snapshot {
	return Snapshot{
		Lines:       c.Lines.Texts(),
		ActiveIndex: c.Lines.Index(c.Typing.Active),
		Scroll:      c.Scroll,
		LineHeight:  c.Lines.LineHeight(),
		Version:     c.Version,
		Stats:       c.Stats,
	}
}
