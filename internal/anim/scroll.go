package anim

import (
	"math"

	"github.com/five82/phosphor/internal/state"
)

const (
	// EaseFactor is the fraction of the remaining distance covered per tick.
	EaseFactor = 0.12

	// settleEpsilon snaps the offset onto the target once it is this close.
	settleEpsilon = 1e-3
)

// Follower eases the visible scroll offset toward the bottom of the buffer.
type Follower struct {
	factor float64
}

// NewFollower returns a Follower using EaseFactor.
func NewFollower() Follower {
	return Follower{factor: EaseFactor}
}

// Retarget recomputes the target so the newest line sits at the bottom of
// the viewport.
func (f Follower) Retarget(ctx *state.Context) {
	retarget(ctx)
}

// Compensate shifts both offsets up by delta after lines leave the front of
// the buffer.
func (f Follower) Compensate(ctx *state.Context, delta float64) {
	ctx.Scroll.Current = math.Max(0, ctx.Scroll.Current-delta)
	ctx.Scroll.Target = math.Max(0, ctx.Scroll.Target-delta)
}

// Tick moves the current offset one easing step toward the target.
func (f Follower) Tick(ctx *state.Context) {
	s := &ctx.Scroll
	diff := s.Target - s.Current
	if math.Abs(diff) < settleEpsilon {
		s.Current = s.Target
		return
	}
	s.Current += diff * f.factor
	if s.Current < 0 {
		s.Current = 0
	}
}

func retarget(ctx *state.Context) {
	ctx.Scroll.Target = math.Max(0, ctx.Lines.ContentHeight()-ctx.ViewportHeight)
}
