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

// Package plot draws compositions as raster images, SVG, PDF and JSON.
//
// All backends paint in the same order: background, grid points, circle
// outline, lines and finally the grain. Only gray levels are used, so that
// the output looks the same in every format.
package plot

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"
)

// Style gives the appearance of a drawn composition. Sizes are in canvas
// units and are multiplied by Scale in the output.
type Style struct {
	Background color.Gray

	Line    color.Gray
	LineCap graphics.LineCapStyle

	GridPoint     color.Gray
	GridPointSize float64 // diameter

	Outline      color.Gray
	OutlineWidth float64

	Grain     color.Gray
	GrainSize float64 // diameter

	// Scale maps canvas units to output pixels (or PDF points).
	Scale float64
}

// DefaultStyle returns the plotter look: near-black lines with projecting
// caps on an off-white background.
func DefaultStyle() Style {
	return Style{
		Background:    color.Gray{Y: 242},
		Line:          color.Gray{Y: 0x28},
		LineCap:       graphics.LineCapSquare,
		GridPoint:     color.Gray{Y: 0xAA},
		GridPointSize: 1.5,
		Outline:       color.Gray{Y: 0xCC},
		OutlineWidth:  0.5,
		Grain:         color.Gray{Y: 229},
		GrainSize:     2,
		Scale:         1,
	}
}

func (s Style) scale() float64 {
	if s.Scale > 0 {
		return s.Scale
	}
	return 1
}

// pixelSize returns the output size for a canvas of the given size.
func (s Style) pixelSize(width, height float64) (int, int) {
	k := s.scale()
	return max(1, int(width*k+0.5)), max(1, int(height*k+0.5))
}

// blend mixes fg over bg with opacity alpha.
func blend(bg, fg color.Gray, alpha float64) float64 {
	return float64(bg.Y)*(1-alpha) + float64(fg.Y)*alpha
}
