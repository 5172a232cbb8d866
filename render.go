// seehuhn.de/go/composition - plotter-style line compositions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package composition

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/composition/random"
)

// Pipeline turns configurations into compositions on a canvas of fixed size.
//
// A Pipeline holds no per-render state. Every call to Render uses a freshly
// created and seeded random source, so a Pipeline can be used from several
// goroutines at once.
type Pipeline struct {
	width, height float64
	newSource     random.Factory
	grain         GrainParams
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSource sets the factory for random sources. The default is
// [random.PCGFactory].
func WithSource(f random.Factory) Option {
	return func(p *Pipeline) {
		p.newSource = f
	}
}

// WithGrain replaces [DefaultGrain].
func WithGrain(g GrainParams) Option {
	return func(p *Pipeline) {
		p.grain = g
	}
}

// NewPipeline returns a pipeline for a canvas of the given size.
func NewPipeline(width, height float64, opts ...Option) *Pipeline {
	p := &Pipeline{
		width:     width,
		height:    height,
		newSource: random.PCGFactory,
		grain:     DefaultGrain,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Size returns the canvas size.
func (p *Pipeline) Size() (width, height float64) {
	return p.width, p.height
}

// Render generates the composition described by cfg.
//
// The random source is seeded once from cfg.Seed and then consumed by the
// grid, the line sampler and the grain generator, in this order. Identical
// configurations therefore give identical outputs, and switching the grain
// on or off never changes the grid or the lines.
func (p *Pipeline) Render(cfg Config) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := &random.Counter{Source: p.newSource()}
	src.Seed(cfg.Seed)

	grid, err := BuildGrid(cfg.GridWidth, cfg.GridHeight, cfg.Jitter, p.width, p.height, src)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Config: cfg,
		Width:  p.width,
		Height: p.height,
		Grid:   grid,
		Circle: CanvasCircle(p.width, p.height),
	}

	lines := SampleLines(grid, out.Mask(), SampleParams{
		MaxLength: cfg.MaxLineLength,
		Obliquity: cfg.Obliquity,
		Skew:      cfg.LengthSkew,
		Count:     cfg.LineCount,
	}, src)
	out.Lines = lines.Lines
	out.Attempts = lines.Attempts

	if cfg.ApplyGrain {
		out.Grain = GenerateGrain(p.grain, p.width, p.height, src)
	}

	log := Logger()
	if !out.Complete() {
		log.Info("attempt budget exhausted",
			"seed", cfg.Seed,
			"lines", len(out.Lines),
			"requested", cfg.LineCount,
			"attempts", out.Attempts)
	}
	log.Debug("composition rendered",
		"seed", cfg.Seed,
		"grid", fmt.Sprintf("%dx%d", cfg.GridWidth, cfg.GridHeight),
		"lines", len(out.Lines),
		"attempts", out.Attempts,
		"speckles", len(out.Grain),
		"draws", src.N)

	return out, nil
}

// RenderBatch renders several independent configurations in parallel.
// The outputs are returned in the order of cfgs. The first error stops
// the batch; renders which have not started yet are skipped.
func (p *Pipeline) RenderBatch(ctx context.Context, cfgs []Config) ([]*Output, error) {
	res := make([]*Output, len(cfgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, cfg := range cfgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := p.Render(cfg)
			if err != nil {
				return fmt.Errorf("config %d (seed %d): %w", i, cfg.Seed, err)
			}
			res[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
