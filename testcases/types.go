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

// Package testcases defines named compositions used by tests, benchmarks
// and the gallery generator.
package testcases

import "seehuhn.de/go/composition"

// TestCase is a single named composition.
type TestCase struct {
	Name   string             // lowercase a-z, 0-9 and _ only
	Config composition.Config // the composition parameters
	Width  int                // canvas width in pixels
	Height int                // canvas height in pixels
}

// base returns the classic configuration with the given seed on a small
// grid, so that the cases stay fast to render.
func base(seed int64) composition.Config {
	cfg := composition.DefaultConfig()
	cfg.GridWidth = 64
	cfg.GridHeight = 64
	cfg.LineCount = 64
	cfg.StrokeWidth = 3
	cfg.Seed = seed
	cfg.ApplyGrain = false
	return cfg
}

// with applies f to a copy of cfg.
func with(cfg composition.Config, f func(*composition.Config)) composition.Config {
	f(&cfg)
	return cfg
}
