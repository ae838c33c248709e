package anim

import (
	"math"
	"time"

	"github.com/five82/phosphor/internal/state"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n float64) time.Duration {
	return time.Duration(n * float64(time.Millisecond))
}

// scriptedLines hands out texts in order, repeating the last one.
type scriptedLines struct {
	texts []string
	n     int
}

func (s *scriptedLines) Generate() string {
	if len(s.texts) == 0 {
		return ""
	}
	i := min(s.n, len(s.texts)-1)
	s.n++
	return s.texts[i]
}

// recordingSurface mirrors what a renderer would hold.
type recordingSurface struct {
	viewportHeight float64
	lineHeight     float64

	lines   []*state.Line
	cursor  *state.Line
	scroll  float64
	jitterX float64
	jitterY float64
	removed int
}

func (r *recordingSurface) Metrics() (float64, float64) { return r.viewportHeight, r.lineHeight }
func (r *recordingSurface) AppendLine(line *state.Line) { r.lines = append(r.lines, line) }
func (r *recordingSurface) RemoveOldest() {
	r.removed++
	if len(r.lines) > 0 {
		r.lines = r.lines[1:]
	}
}
func (r *recordingSurface) SetScroll(offset float64)   { r.scroll = offset }
func (r *recordingSurface) SetCursor(line *state.Line) { r.cursor = line }
func (r *recordingSurface) SetJitter(x, y float64)     { r.jitterX, r.jitterY = x, y }

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
