// Package app is the composition root of phosphor.
//
// Run loads the config, applies command-line overrides, sets up logging and
// then hands a ui.Options to one of two front ends:
//
//   - ui.Run, a full-screen Bubble Tea program, when stdout is a terminal
//   - ui.RunPlain, which prints each finished line, otherwise or with -plain
//
// Both share one entropy source between the line generator and the
// animation, so a fixed seed replays the same session. The resolved seed is
// logged at start-up.
//
// Only config errors and front-end failures are returned. A missing config
// or banner file falls back to defaults.
package app
