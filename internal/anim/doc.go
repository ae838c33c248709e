// Package anim drives the terminal typing animation.
//
// A Driver owns one state.Context and, on every Tick, runs the parts in a
// fixed order:
//
//  1. Typer reveals at most one rune, or completes the line and starts the
//     next one
//  2. overflow lines are evicted from the front of the buffer and the scroll
//     offsets move up by the same distance
//  3. Follower eases the scroll offset toward the bottom
//  4. Jitter starts or ends a short burst of offset
//
// Rendering goes through the Surface interface. The driver makes every
// decision; surfaces only draw what they are told. Time comes in as a
// parameter and randomness through an entropy.Source, so tests script both.
package anim
