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

import "seehuhn.de/go/geom/vec"

// circleFill is the fraction of the half-size of the canvas covered by the
// circle radius.
const circleFill = 0.9

// Circle is a disk in canvas coordinates.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// CanvasCircle returns the circle used for masking a canvas of the given
// size: centred, with a radius of 90% of half the shorter side.
func CanvasCircle(width, height float64) Circle {
	return Circle{
		Center: vec.Vec2{X: width / 2, Y: height / 2},
		Radius: min(width, height) / 2 * circleFill,
	}
}

// Contains reports whether p lies inside the circle or on its boundary.
func (c Circle) Contains(p vec.Vec2) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Mask restricts line endpoints to a circle. When Enabled is false, every
// point passes; the circle is kept so that it can still be drawn.
type Mask struct {
	Circle  Circle
	Enabled bool
}

// Contains reports whether p passes the mask.
func (m Mask) Contains(p vec.Vec2) bool {
	return !m.Enabled || m.Circle.Contains(p)
}
