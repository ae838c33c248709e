package anim

import (
	"time"

	"github.com/five82/phosphor/internal/entropy"
	"github.com/five82/phosphor/internal/state"
)

// Jitter timing, in milliseconds, and offset bound in distance units.
const (
	jitterIntervalMin = 10000
	jitterIntervalMax = 20000
	jitterBurstMin    = 200
	jitterBurstMax    = 450
	JitterAmplitude   = 0.8
)

// Jitter periodically nudges the surface for a short burst.
type Jitter struct {
	src     entropy.Source
	enabled bool
}

// NewJitter returns a Jitter drawing from src. A disabled Jitter always
// reports a zero offset.
func NewJitter(src entropy.Source, enabled bool) *Jitter {
	return &Jitter{src: src, enabled: enabled}
}

// Tick schedules and starts bursts and returns the offset to apply at now.
func (j *Jitter) Tick(ctx *state.Context, now time.Time) (x, y float64) {
	if !j.enabled {
		return 0, 0
	}
	js := &ctx.Jitter
	if js.NextTriggerAt.IsZero() {
		js.NextTriggerAt = now.Add(j.interval())
	}
	if !now.Before(js.NextTriggerAt) {
		js.ActiveUntil = now.Add(entropy.Millis(j.src, jitterBurstMin, jitterBurstMax))
		js.OffsetX = entropy.Between(j.src, -JitterAmplitude, JitterAmplitude)
		js.OffsetY = entropy.Between(j.src, -JitterAmplitude, JitterAmplitude)
		js.NextTriggerAt = now.Add(j.interval())
	}
	return js.Offset(now)
}

func (j *Jitter) interval() time.Duration {
	return entropy.Millis(j.src, jitterIntervalMin, jitterIntervalMax)
}
