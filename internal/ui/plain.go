package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/five82/phosphor/internal/anim"
	"github.com/five82/phosphor/internal/state"
)

// RunPlain writes each line to w once it is fully typed, until ctx is
// cancelled or a write fails. It is used when stdout is not a terminal.
func RunPlain(ctx context.Context, opts Options, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := &plainSurface{
		w:          w,
		lineHeight: state.ValidLineHeight(opts.LineHeight),
		fail:       cancel,
	}
	driver := anim.New(opts.driverOptions(), out)
	driver.Seed(opts.clock().Now(), opts.Banner)

	if err := driver.Run(ctx, opts.interval()); err != nil {
		return err
	}
	if out.err != nil {
		return fmt.Errorf("write output: %w", out.err)
	}
	return nil
}

// plainSurface prints completed lines and ignores everything visual.
type plainSurface struct {
	w          io.Writer
	lineHeight float64
	pending    []*state.Line
	err        error
	fail       context.CancelFunc
}

// Metrics reports an empty viewport, so the buffer keeps its minimum size.
func (p *plainSurface) Metrics() (float64, float64) { return 0, p.lineHeight }

func (p *plainSurface) AppendLine(line *state.Line) {
	p.pending = append(p.pending, line)
	p.flush()
}

func (p *plainSurface) RemoveOldest() {}

func (p *plainSurface) SetScroll(float64) {}

func (p *plainSurface) SetCursor(*state.Line) { p.flush() }

func (p *plainSurface) SetJitter(float64, float64) {}

// flush writes the completed lines at the head of pending, in order.
func (p *plainSurface) flush() {
	for len(p.pending) > 0 && p.pending[0].State == state.Complete {
		if p.err == nil {
			if _, err := fmt.Fprintln(p.w, p.pending[0].Text); err != nil {
				p.err = err
				if p.fail != nil {
					p.fail()
				}
			}
		}
		p.pending[0] = nil
		p.pending = p.pending[1:]
	}
}
