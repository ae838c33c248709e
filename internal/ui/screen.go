package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/phosphor/internal/state"
)

// screen draws the animation into a viewport. One row holds one line, so
// distances the driver hands over are rows times lineHeight.
type screen struct {
	vp         viewport.Model
	lineHeight float64

	lines  []*state.Line
	cursor *state.Line

	scrollRow int
	shiftX    int
	shiftY    int

	// Content caching - skip re-render when unchanged
	rendered renderKey
	hasRows  bool
}

// renderKey is everything the row content depends on. The scroll row and
// vertical shift are applied after the content and are not part of it.
type renderKey struct {
	version uint64
	lines   int
	cursor  *state.Line
	blink   bool
	shiftX  int
	width   int
	bg      lipgloss.Color
}

func newScreen(lineHeight float64) *screen {
	return &screen{
		vp:         viewport.New(0, 0),
		lineHeight: state.ValidLineHeight(lineHeight),
	}
}

// SetSize sets the visible area in cells.
func (s *screen) SetSize(width, height int) {
	s.vp.Width = max(0, width)
	s.vp.Height = max(0, height)
}

func (s *screen) Metrics() (viewportHeight, lineHeight float64) {
	return float64(s.vp.Height) * s.lineHeight, s.lineHeight
}

func (s *screen) AppendLine(line *state.Line) {
	s.lines = append(s.lines, line)
}

func (s *screen) RemoveOldest() {
	if len(s.lines) == 0 {
		return
	}
	s.lines[0] = nil
	s.lines = s.lines[1:]
}

func (s *screen) SetScroll(offset float64) {
	s.scrollRow = int(math.Round(offset / s.lineHeight))
}

func (s *screen) SetCursor(line *state.Line) {
	s.cursor = line
}

// SetJitter shifts the picture by whole cells. Offsets under half a cell
// leave it in place.
func (s *screen) SetJitter(x, y float64) {
	s.shiftX = int(math.Round(x))
	s.shiftY = int(math.Round(y))
}

// Render returns the visible rows at now. version is the animation's
// content version; rows are rebuilt only when it or the layout changed.
func (s *screen) Render(styles Styles, bg BgStyle, now time.Time, version uint64) string {
	width := s.vp.Width
	key := renderKey{
		version: version,
		lines:   len(s.lines),
		cursor:  s.cursor,
		blink:   cursorVisible(now),
		shiftX:  s.shiftX,
		width:   width,
		bg:      bg.bg,
	}
	if !s.hasRows || key != s.rendered {
		s.vp.Style = styles.Screen
		s.vp.SetContent(s.renderRows(styles, bg, key.blink))
		s.rendered, s.hasRows = key, true
	}
	s.vp.SetYOffset(s.scrollRow)
	return shiftRows(s.vp.View(), s.shiftY, bg.Spaces(width))
}

func (s *screen) renderRows(styles Styles, bg BgStyle, blink bool) string {
	width := s.vp.Width
	margin := max(0, screenMarginCols+s.shiftX)
	textWidth := max(0, width-margin)

	rows := make([]string, len(s.lines))
	for i, line := range s.lines {
		text := ansi.Truncate(line.Text, textWidth, "")
		style := styles.Text
		var cursor string
		if line == s.cursor {
			style = styles.Active
			if blink && ansi.StringWidth(text) < textWidth {
				cursor = bg.Render("_", styles.Cursor)
			}
		}
		rows[i] = bg.FillLine(bg.Spaces(margin)+bg.Render(text, style)+cursor, width)
	}
	return strings.Join(rows, "\n")
}

// cursorVisible reports whether the blinking cursor is lit at now.
func cursorVisible(now time.Time) bool {
	return (now.UnixNano()/int64(CursorBlink))%2 == 0
}

// shiftRows moves view down by dy rows, or up when dy is negative, keeping
// the row count. Vacated rows get blank.
func shiftRows(view string, dy int, blank string) string {
	if dy == 0 || view == "" {
		return view
	}
	rows := strings.Split(view, "\n")
	n := len(rows)
	if dy >= n || -dy >= n {
		for i := range rows {
			rows[i] = blank
		}
		return strings.Join(rows, "\n")
	}
	shifted := make([]string, 0, n)
	if dy > 0 {
		for range dy {
			shifted = append(shifted, blank)
		}
		shifted = append(shifted, rows[:n-dy]...)
	} else {
		shifted = append(shifted, rows[-dy:]...)
		for range -dy {
			shifted = append(shifted, blank)
		}
	}
	return strings.Join(shifted, "\n")
}
