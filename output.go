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
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Output is the complete geometry of one rendered composition.
// Renderers read an Output but never modify it.
type Output struct {
	// Config is the configuration the output was generated from.
	Config Config

	// Width and Height give the canvas size.
	Width, Height float64

	Grid   *Grid
	Circle Circle

	// Lines holds the accepted segments, in the order they were found.
	Lines []Segment

	// Attempts is the number of candidates tried while placing Lines.
	Attempts int

	// Grain is nil unless Config.ApplyGrain is set.
	Grain []Speckle
}

// Mask returns the mask which was applied to line endpoints.
func (o *Output) Mask() Mask {
	return Mask{Circle: o.Circle, Enabled: o.Config.MaskToCircle}
}

// Complete reports whether all requested lines were placed.
func (o *Output) Complete() bool {
	return len(o.Lines) >= o.Config.LineCount
}

// Endpoints returns the canvas positions of the two ends of s.
func (o *Output) Endpoints(s Segment) (a, b vec.Vec2) {
	return o.Grid.At(s.From), o.Grid.At(s.To)
}

// OutlineVisible reports whether the circle outline should be drawn.
// The outline is only shown when the mask is applied.
func (o *Output) OutlineVisible() bool {
	return o.Config.MaskToCircle && o.Config.ShowCircleOutline
}

// GridPoints iterates over the grid points which should be drawn: none if
// Config.ShowGrid is unset, otherwise all points which pass the mask.
func (o *Output) GridPoints() iter.Seq[vec.Vec2] {
	return func(yield func(vec.Vec2) bool) {
		if !o.Config.ShowGrid {
			return
		}
		m := o.Mask()
		for _, p := range o.Grid.Points {
			if m.Contains(p) && !yield(p) {
				return
			}
		}
	}
}
