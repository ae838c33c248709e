package anim

import (
	"strings"
	"time"

	"github.com/five82/phosphor/internal/entropy"
	"github.com/five82/phosphor/internal/state"
)

// LineSource produces the target text for the next typed line.
type LineSource interface {
	Generate() string
}

// Typing delays, in milliseconds.
const (
	baseDelayMin        = 18
	baseDelayMax        = 68
	punctuationDelayMin = 80
	punctuationDelayMax = 150
	hesitationDelayMin  = 140
	hesitationDelayMax  = 320
	completionDelayMin  = 220
	completionDelayMax  = 600
	firstCharDelayMin   = 240
	firstCharDelayMax   = 520

	hesitationChance = 0.03
)

// pauseRunes get a longer pause after they are revealed.
const pauseRunes = `.,;:)\]`

// Delay is the wait before the next reveal, split into its parts.
type Delay struct {
	Base        time.Duration
	Punctuation time.Duration
	Hesitation  time.Duration
	Completion  time.Duration
}

// Total returns the sum of every part.
func (d Delay) Total() time.Duration {
	return d.Base + d.Punctuation + d.Hesitation + d.Completion
}

// TypingEvent describes what one Advance call changed.
type TypingEvent struct {
	Revealed  bool
	Rune      rune
	Completed *state.Line
	Started   *state.Line
}

// Typer reveals the active line one rune at a time at human-like intervals.
type Typer struct {
	src   entropy.Source
	lines LineSource
}

// NewTyper returns a Typer drawing delays from src and line text from lines.
func NewTyper(src entropy.Source, lines LineSource) *Typer {
	return &Typer{src: src, lines: lines}
}

// NextDelay computes the wait after revealing last. A zero last means nothing
// was revealed. complete adds the pause between lines.
func (t *Typer) NextDelay(last rune, complete bool) Delay {
	d := Delay{Base: entropy.Millis(t.src, baseDelayMin, baseDelayMax)}
	if last != 0 && strings.ContainsRune(pauseRunes, last) {
		d.Punctuation = entropy.Millis(t.src, punctuationDelayMin, punctuationDelayMax)
	}
	if entropy.Chance(t.src, hesitationChance) {
		d.Hesitation = entropy.Millis(t.src, hesitationDelayMin, hesitationDelayMax)
	}
	if complete {
		d.Completion = entropy.Millis(t.src, completionDelayMin, completionDelayMax)
	}
	return d
}

// StartLine appends a fresh Typing line with newly generated target text and
// retargets the scroll.
func (t *Typer) StartLine(ctx *state.Context) *state.Line {
	line := ctx.Lines.Append("")
	ctx.Typing = state.TypingState{
		Active:     line,
		Target:     []rune(t.lines.Generate()),
		CharIndex:  0,
		NextCharAt: ctx.Typing.NextCharAt,
	}
	retarget(ctx)
	ctx.Touch()
	return line
}

// Advance reveals at most one rune. Before the scheduled time it does
// nothing. Once the target is fully revealed the line completes and the next
// one starts.
func (t *Typer) Advance(ctx *state.Context, now time.Time) TypingEvent {
	typing := &ctx.Typing
	if typing.Active == nil {
		line := t.StartLine(ctx)
		typing.NextCharAt = now.Add(entropy.Millis(t.src, firstCharDelayMin, firstCharDelayMax))
		return TypingEvent{Started: line}
	}
	if now.Before(typing.NextCharAt) {
		return TypingEvent{}
	}

	if typing.CharIndex < len(typing.Target) {
		r := typing.Target[typing.CharIndex]
		typing.Active.Text += string(r)
		typing.CharIndex++
		ctx.Stats.Revealed++
		ctx.Touch()
		typing.NextCharAt = now.Add(t.NextDelay(r, false).Total())
		return TypingEvent{Revealed: true, Rune: r}
	}

	done := typing.Active
	done.State = state.Complete
	ctx.Stats.Completed++
	next := t.StartLine(ctx)
	ctx.Typing.NextCharAt = now.Add(t.NextDelay(0, true).Total())
	return TypingEvent{Completed: done, Started: next}
}
