package anim

import (
	"time"

	"github.com/five82/phosphor/internal/state"
)

// Surface is where the animation is drawn. Implementations only render; all
// decisions are made by the driver.
type Surface interface {
	// Metrics reports the viewport height and the height of one line, in the
	// same distance unit.
	Metrics() (viewportHeight, lineHeight float64)
	AppendLine(line *state.Line)
	RemoveOldest()
	SetScroll(offset float64)
	// SetCursor attaches the cursor to line. A nil line detaches it.
	SetCursor(line *state.Line)
	SetJitter(x, y float64)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
