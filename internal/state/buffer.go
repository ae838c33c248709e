package state

import "math"

// LineState tracks whether a line is still being typed.
type LineState int

const (
	Typing LineState = iota
	Complete
)

// Line is one unit of displayed text. Text only grows while the line is
// Typing and is immutable once Complete.
type Line struct {
	Text  string
	State LineState
}

// Buffer sizing defaults.
const (
	DefaultLineHeight  = 18.0
	DefaultMinCapacity = 120
	screensOfHistory   = 6
)

// LineBuffer is an ordered, capacity-bounded collection of lines, oldest
// first. Lines leave only through EvictOverflow.
type LineBuffer struct {
	lines       []*Line
	minCapacity int
	capacity    int
	lineHeight  float64
}

// NewLineBuffer returns an empty buffer whose capacity never drops below
// minCapacity. Non-positive values use DefaultMinCapacity. Settings loaded by
// config never go below DefaultMinCapacity; smaller values are accepted here
// for short buffers.
func NewLineBuffer(minCapacity int) *LineBuffer {
	if minCapacity <= 0 {
		minCapacity = DefaultMinCapacity
	}
	return &LineBuffer{
		minCapacity: minCapacity,
		capacity:    minCapacity,
		lineHeight:  DefaultLineHeight,
	}
}

// Append adds an empty-or-partial line in the Typing state to the back.
func (b *LineBuffer) Append(text string) *Line {
	line := &Line{Text: text, State: Typing}
	b.lines = append(b.lines, line)
	return line
}

// AppendStatic adds a line that is already Complete.
func (b *LineBuffer) AppendStatic(text string) *Line {
	line := &Line{Text: text, State: Complete}
	b.lines = append(b.lines, line)
	return line
}

// EvictOverflow removes lines from the front until the buffer fits its
// capacity and returns how many were removed. The caller shifts scroll state
// by the returned count times LineHeight.
func (b *LineBuffer) EvictOverflow() int {
	overflow := len(b.lines) - b.capacity
	if overflow <= 0 {
		return 0
	}
	n := copy(b.lines, b.lines[overflow:])
	clear(b.lines[n:])
	b.lines = b.lines[:n]
	return overflow
}

// RecomputeCapacity sizes the buffer to six screens of history for the given
// viewport, never below the configured minimum. An invalid lineHeight falls
// back to DefaultLineHeight.
func (b *LineBuffer) RecomputeCapacity(viewportHeight, lineHeight float64) {
	b.lineHeight = ValidLineHeight(lineHeight)
	screens := 0
	if viewportHeight > 0 && !math.IsInf(viewportHeight, 0) {
		screens = int(math.Ceil(viewportHeight / b.lineHeight))
	}
	b.capacity = max(b.minCapacity, screens*screensOfHistory)
}

// ContentHeight is the total height of every buffered line.
func (b *LineBuffer) ContentHeight() float64 {
	return float64(len(b.lines)) * b.lineHeight
}

// Len returns the number of buffered lines.
func (b *LineBuffer) Len() int { return len(b.lines) }

// Capacity returns the current maximum number of lines.
func (b *LineBuffer) Capacity() int { return b.capacity }

// LineHeight returns the height used for content calculations.
func (b *LineBuffer) LineHeight() float64 { return b.lineHeight }

// At returns the line at index i, oldest first, or nil when out of range.
func (b *LineBuffer) At(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// Index returns the position of line in the buffer or -1.
func (b *LineBuffer) Index(line *Line) int {
	if line == nil {
		return -1
	}
	// The active line is almost always last.
	for i := len(b.lines) - 1; i >= 0; i-- {
		if b.lines[i] == line {
			return i
		}
	}
	return -1
}

// Texts returns a copy of every line's text, oldest first.
func (b *LineBuffer) Texts() []string {
	if len(b.lines) == 0 {
		return nil
	}
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = line.Text
	}
	return out
}

// ValidLineHeight returns h, or DefaultLineHeight when h is NaN, infinite or
// not positive.
func ValidLineHeight(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return DefaultLineHeight
	}
	return h
}
