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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance, relative to the radius, for a
// cubic Bézier approximation of a quarter circle.
const kappa = 0.5522847498307936

// Line returns the path of a straight line from a to b.
func Line(a, b vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(a).LineTo(b)
}

// Circle returns a closed circle around c, built from four cubic curves.
func Circle(c vec.Vec2, radius float64) *path.Data {
	return appendCircle(&path.Data{}, c, radius)
}

// Ring returns two concentric circles of radius outer and inner. Filled
// with the even-odd rule, the path covers the annulus between them.
func Ring(c vec.Vec2, outer, inner float64) *path.Data {
	return appendCircle(appendCircle(&path.Data{}, c, outer), c, inner)
}

// Square returns an axis-aligned square of the given side length, centred
// at c.
func Square(c vec.Vec2, side float64) *path.Data {
	h := side / 2
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X - h, Y: c.Y - h}).
		LineTo(vec.Vec2{X: c.X + h, Y: c.Y - h}).
		LineTo(vec.Vec2{X: c.X + h, Y: c.Y + h}).
		LineTo(vec.Vec2{X: c.X - h, Y: c.Y + h}).
		Close()
}

func appendCircle(p *path.Data, c vec.Vec2, r float64) *path.Data {
	k := r * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }
	return p.
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, -k), pt(k, -r), pt(0, -r)).
		CubeTo(pt(-k, -r), pt(-r, -k), pt(-r, 0)).
		CubeTo(pt(-r, k), pt(-k, r), pt(0, r)).
		CubeTo(pt(k, r), pt(r, k), pt(r, 0)).
		Close()
}
