// Package state holds the data model of the typing animation.
//
// # Overview
//
// Every piece of mutable animation state lives in one explicit Context value
// that the driver passes to each component on every tick:
//
//   - Lines: the bounded scrollback buffer (LineBuffer)
//   - ViewportHeight: the last measured viewport height
//   - Typing: the active line, its target text and the next reveal time
//   - Scroll: the eased scroll offset and its target
//   - Jitter: the pending-or-active jitter burst
//
// Nothing here is global, so each component can be tested in isolation with
// an injected time and random source.
//
// # LineBuffer
//
// Lines are kept oldest first. The buffer capacity is six screens of
// history, never less than the configured minimum:
//
//	capacity = max(minCapacity, ceil(viewportHeight / lineHeight) * 6)
//
// Capacity is recomputed on resize. Growing past capacity never happens
// silently: EvictOverflow removes lines from the front and returns how many
// went, so the scroll offset can be shifted up by the same number of lines
// and the visible text does not jump.
//
// All lines share one height. Variable-height lines would break the eviction
// compensation and are not supported.
//
// # Concurrency
//
// None. A Context is owned by a single driver running on a single goroutine.
// Snapshot returns a copy for callers that want to keep text around.
package state
