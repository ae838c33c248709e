// Package ui puts the typing animation on a terminal.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns an anim.Driver and a screen,
// the driver's Surface:
//
//   - app.go: Model, the tick loop and Run
//   - screen.go: anim.Surface over a bubbles viewport
//   - frame.go: the rounded, titled border
//   - plain.go: RunPlain, for output that is not a terminal
//   - theme.go: Phosphor, Amber and Ice palettes
//
// # Mapping the animation onto cells
//
// One terminal row holds one line. The driver works in distance units, so
// the screen reports its height as rows times the configured line height and
// converts the scroll offset back with
//
//	row = round(offset / lineHeight)
//
// Jitter offsets are rounded to whole cells. With the default amplitude that
// moves the picture by at most one row or column, into a one-column margin
// kept on the left of every line.
//
// # Tick loop
//
// Every tickMsg runs one driver tick with the message time and schedules the
// next one. The first WindowSizeMsg seeds the banner; later ones only resize.
// Rendering happens in View, which also picks the cursor blink phase from
// the last tick time.
//
// # Keys
//
// The display is one-way. ctrl+c, q and esc quit; everything else is
// ignored.
package ui
