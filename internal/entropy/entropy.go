// Package entropy provides the injectable random source shared by the line
// generator and the animation components.
package entropy

import (
	"math/rand/v2"
	"time"
)

// Source yields uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a PCG-backed source. A zero seed draws the seed from the
// runtime's entropy so every run differs.
func New(seed uint64) *rand.Rand {
	seed = ResolveSeed(seed)
	return rand.New(rand.NewPCG(seed, seed))
}

// ResolveSeed returns seed, or a fresh non-zero seed when seed is zero, so a
// run can be logged and replayed.
func ResolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// Between returns a value uniformly distributed in [min, max).
func Between(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Intn returns an integer in [0, n). It returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[Intn(src, len(items))]
}

// Chance reports whether a single draw falls below p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Millis returns a duration uniformly distributed in [min, max) milliseconds.
func Millis(src Source, min, max float64) time.Duration {
	return time.Duration(Between(src, min, max) * float64(time.Millisecond))
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Tests use it to make every draw predictable.
type Sequence struct {
	values []float64
	next   int
	draws  int
}

// NewSequence returns a Sequence over values. Values outside [0, 1) are
// clamped into range.
func NewSequence(values ...float64) *Sequence {
	clamped := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0:
			v = 0
		case v >= 1:
			v = 0.9999999
		}
		clamped[i] = v
	}
	return &Sequence{values: clamped}
}

// Float64 returns the next value in the sequence. An empty sequence always
// returns 0.
func (s *Sequence) Float64() float64 {
	s.draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.draws
}

// Digits returns the sequence values that make Intn(src, base) yield each of
// digits in order.
func Digits(base int, digits ...int) []float64 {
	out := make([]float64, len(digits))
	for i, d := range digits {
		out[i] = (float64(d) + 0.5) / float64(base)
	}
	return out
}
