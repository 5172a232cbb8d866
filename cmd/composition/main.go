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

// Command composition renders plotter-style line compositions.
//
// Usage:
//
//	composition [flags]
//
// The output format is chosen by the extension of the -o flag: .png, .svg,
// .pdf or .json. With -seeds N, N compositions with consecutive seeds are
// rendered in parallel, and the seed is appended to each file name.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"seehuhn.de/go/composition"
	"seehuhn.de/go/composition/plot"
	"seehuhn.de/go/composition/random"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "composition:", err)
		os.Exit(1)
	}
}

func run() error {
	def := composition.DefaultConfig()
	cfg := def

	flag.IntVar(&cfg.GridWidth, "grid-x", def.GridWidth, "number of grid columns")
	flag.IntVar(&cfg.GridHeight, "grid-y", def.GridHeight, "number of grid rows")
	flag.Float64Var(&cfg.Jitter, "jitter", def.Jitter, "grid jitter, as a fraction of a cell (0-1)")
	flag.Float64Var(&cfg.MaxLineLength, "length", def.MaxLineLength, "maximal line length, as a fraction of the grid (0-1)")
	flag.Float64Var(&cfg.Obliquity, "obliquity", def.Obliquity, "deviation from horizontal and vertical (0-1)")
	flag.Float64Var(&cfg.LengthSkew, "skew", def.LengthSkew, "length skew exponent; large values favour short lines")
	flag.IntVar(&cfg.LineCount, "lines", def.LineCount, "number of lines")
	flag.IntVar(&cfg.StrokeWidth, "stroke", def.StrokeWidth, "line width")
	flag.Int64Var(&cfg.Seed, "seed", def.Seed, "random seed")
	flag.BoolVar(&cfg.ShowGrid, "show-grid", def.ShowGrid, "draw the grid points")
	flag.BoolVar(&cfg.MaskToCircle, "mask", def.MaskToCircle, "keep lines inside the circle")
	flag.BoolVar(&cfg.ShowCircleOutline, "outline", def.ShowCircleOutline, "draw the circle outline")
	flag.BoolVar(&cfg.ApplyGrain, "grain", def.ApplyGrain, "add film grain")

	width := flag.Float64("width", 600, "canvas width")
	height := flag.Float64("height", 600, "canvas height")
	scale := flag.Float64("scale", 1, "output pixels per canvas unit")
	rng := flag.String("rng", "pcg", "random number generator: pcg or lcg")
	output := flag.String("o", "composition.png", "output file (.png, .svg, .pdf or .json)")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to render")
	thumb := flag.Int("thumb", 0, "also write a PNG thumbnail with this maximal side length")
	verbose := flag.Bool("v", false, "log details about each composition")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	composition.SetLogger(logger)

	var factory random.Factory
	switch *rng {
	case "pcg":
		factory = random.PCGFactory
	case "lcg":
		factory = random.LCGFactory
	default:
		return fmt.Errorf("unknown generator %q", *rng)
	}
	if !(*width > 0 && *height > 0) {
		return errors.New("canvas size must be positive")
	}

	ext := strings.ToLower(filepath.Ext(*output))
	write, ok := writers[ext]
	if !ok {
		return fmt.Errorf("%s: unsupported output format", *output)
	}

	cfg = cfg.Clamp()
	cfgs := make([]composition.Config, max(*seeds, 1))
	for i := range cfgs {
		cfgs[i] = cfg
		cfgs[i].Seed = cfg.Seed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pipe := composition.NewPipeline(*width, *height, composition.WithSource(factory))
	outs, err := pipe.RenderBatch(ctx, cfgs)
	if err != nil {
		return err
	}

	style := plot.DefaultStyle()
	style.Scale = *scale
	for _, out := range outs {
		name := *output
		if len(outs) > 1 {
			name = withSuffix(name, fmt.Sprintf("-%d", out.Config.Seed))
		}
		if err := write(name, out, style); err != nil {
			return err
		}
		if *thumb > 0 {
			thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + "-thumb.png"
			if err := plot.WriteThumbnail(thumbName, out, style, *thumb); err != nil {
				return err
			}
		}
		logger.Info("composition written", "file", name, "lines", len(out.Lines))
	}
	return nil
}

type writeFunc func(fileName string, out *composition.Output, style plot.Style) error

var writers = map[string]writeFunc{
	".png":  plot.WritePNG,
	".svg":  plot.WriteSVG,
	".pdf":  plot.WritePDF,
	".json": writeJSON,
}

func writeJSON(fileName string, out *composition.Output, _ plot.Style) error {
	return plot.WriteJSON(fileName, out)
}

// withSuffix inserts suffix before the extension of name.
func withSuffix(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}
