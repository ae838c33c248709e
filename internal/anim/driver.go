package anim

import (
	"context"
	"time"

	"github.com/five82/phosphor/internal/entropy"
	"github.com/five82/phosphor/internal/state"
)

const (
	// DefaultFrameInterval paces ticks at roughly 60 Hz.
	DefaultFrameInterval = time.Second / 60

	seedDelayMin = 220
	seedDelayMax = 520
)

// Options configure a Driver.
type Options struct {
	Source      entropy.Source // required
	Lines       LineSource     // required
	Clock       Clock          // nil uses SystemClock
	MinCapacity int            // zero uses state.DefaultMinCapacity
	Jitter      bool
}

// Driver runs one animation tick at a time over a single Context.
type Driver struct {
	ctx      *state.Context
	surface  Surface
	clock    Clock
	src      entropy.Source
	typer    *Typer
	follower Follower
	jitter   *Jitter
}

// New returns a Driver drawing to surface. A nil surface is allowed; every
// surface update then becomes a no-op.
func New(opts Options, surface Surface) *Driver {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		ctx:      state.NewContext(opts.MinCapacity),
		surface:  surface,
		clock:    clock,
		src:      opts.Source,
		typer:    NewTyper(opts.Source, opts.Lines),
		follower: NewFollower(),
		jitter:   NewJitter(opts.Source, opts.Jitter),
	}
}

// Context exposes the animation state.
func (d *Driver) Context() *state.Context { return d.ctx }

// Seed shows banner as already-typed lines, starts the first typed line and
// schedules its first character.
func (d *Driver) Seed(now time.Time, banner []string) {
	d.Resize()
	for _, text := range banner {
		line := d.ctx.Lines.AppendStatic(text)
		if d.surface != nil {
			d.surface.AppendLine(line)
		}
	}
	d.startLine()
	d.ctx.Typing.NextCharAt = now.Add(entropy.Millis(d.src, seedDelayMin, seedDelayMax))
	d.evict()
}

// Resize re-measures the surface and recomputes capacity and scroll target.
func (d *Driver) Resize() {
	viewportHeight, lineHeight := 0.0, state.DefaultLineHeight
	if d.surface != nil {
		viewportHeight, lineHeight = d.surface.Metrics()
	}
	d.ctx.Resize(viewportHeight, state.ValidLineHeight(lineHeight))
	d.follower.Retarget(d.ctx)
}

// Tick advances typing, evicts overflow, eases the scroll and updates the
// jitter, in that order.
func (d *Driver) Tick(now time.Time) {
	d.ctx.Stats.Ticks++

	ev := d.typer.Advance(d.ctx, now)
	if ev.Started != nil && d.surface != nil {
		d.surface.AppendLine(ev.Started)
		d.surface.SetCursor(ev.Started)
	}

	d.evict()

	d.follower.Tick(d.ctx)
	if d.surface != nil {
		d.surface.SetScroll(d.ctx.Scroll.Current)
	}

	x, y := d.jitter.Tick(d.ctx, now)
	if d.surface != nil {
		d.surface.SetJitter(x, y)
	}
}

// Run ticks at the given interval until ctx is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.Tick(d.clock.Now())
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (d *Driver) startLine() {
	line := d.typer.StartLine(d.ctx)
	if d.surface != nil {
		d.surface.AppendLine(line)
		d.surface.SetCursor(line)
	}
}

func (d *Driver) evict() {
	n := d.ctx.Lines.EvictOverflow()
	if n == 0 {
		return
	}
	d.ctx.Stats.Evicted += uint64(n)
	d.ctx.Touch()
	d.follower.Compensate(d.ctx, float64(n)*d.ctx.Lines.LineHeight())
	if d.surface == nil {
		return
	}
	for range n {
		d.surface.RemoveOldest()
	}
}
