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
	"fmt"
	"math"
)

// Config holds all parameters of a composition. A Config is a plain value;
// the pipeline never modifies it.
type Config struct {
	// GridWidth and GridHeight give the number of grid columns and rows.
	// Both must be at least 2.
	GridWidth  int
	GridHeight int

	// Jitter is the maximal displacement of a grid point from its lattice
	// position, as a fraction of one grid cell.
	Jitter float64

	// MaxLineLength is the maximal line length, as a fraction of the grid
	// extent along each axis (0-1).
	MaxLineLength float64

	// Obliquity controls how far lines may deviate from horizontal or
	// vertical. 0 gives axis-aligned lines only, 1 allows any direction.
	Obliquity float64

	// LengthSkew is the exponent applied to uniform samples when choosing
	// line lengths. Values above 1 favour short lines, values below 1
	// favour long lines. Must be positive.
	LengthSkew float64

	// LineCount is the number of lines to place.
	LineCount int

	// StrokeWidth is the line width in canvas units.
	StrokeWidth int

	// Seed selects the pseudo-random sequence.
	Seed int64

	ShowGrid          bool // draw the grid points
	MaskToCircle      bool // restrict lines to the central circle
	ShowCircleOutline bool // draw the circle, if the mask is applied
	ApplyGrain        bool // add the grain overlay
}

// DefaultConfig returns the parameters of the classic composition: a dense
// 256x256 grid, 256 short, axis-aligned lines inside the circle, and grain.
func DefaultConfig() Config {
	return Config{
		GridWidth:         256,
		GridHeight:        256,
		Jitter:            0.05,
		MaxLineLength:     0.1,
		Obliquity:         0,
		LengthSkew:        4,
		LineCount:         256,
		StrokeWidth:       8,
		Seed:              42,
		ShowGrid:          false,
		MaskToCircle:      true,
		ShowCircleOutline: true,
		ApplyGrain:        true,
	}
}

// Limits of the documented parameter ranges.
const (
	MinGridSize    = 2
	MinLengthSkew  = 0.1
	MinLineCount   = 1
	MinStrokeWidth = 1
)

// Validate checks that c can be rendered. The error wraps
// [ErrInvalidConfiguration].
func (c Config) Validate() error {
	if c.GridWidth < MinGridSize || c.GridHeight < MinGridSize {
		return fmt.Errorf("%w: grid size %dx%d, need at least %dx%d",
			ErrInvalidConfiguration, c.GridWidth, c.GridHeight, MinGridSize, MinGridSize)
	}
	if c.LineCount < 0 {
		return fmt.Errorf("%w: negative line count %d",
			ErrInvalidConfiguration, c.LineCount)
	}
	return nil
}

// Clamp returns a copy of c with every parameter moved into its documented
// range. User-facing front ends call this before rendering; the generator
// itself does not clamp.
func (c Config) Clamp() Config {
	c.GridWidth = max(c.GridWidth, MinGridSize)
	c.GridHeight = max(c.GridHeight, MinGridSize)
	c.Jitter = clamp01(c.Jitter)
	c.MaxLineLength = clamp01(c.MaxLineLength)
	c.Obliquity = clamp01(c.Obliquity)
	if !(c.LengthSkew >= MinLengthSkew) {
		c.LengthSkew = MinLengthSkew
	}
	c.LineCount = max(c.LineCount, MinLineCount)
	c.StrokeWidth = max(c.StrokeWidth, MinStrokeWidth)
	return c
}

// clamp01 maps x into [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}
