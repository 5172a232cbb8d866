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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p with the current Width and Cap.
//
// Every segment of every subpath is stroked as a rectangle of width Width.
// Caps are added at the two ends of open subpaths; interior vertices get
// round joins. A subpath without extent is drawn as a disk (round cap) or
// an axis-aligned square (square cap), and is omitted for butt caps.
// Curves are flattened first.
//
// All outline polygons are filled together with the nonzero rule, so that
// overlapping parts are painted only once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]

	d := r.Width / 2
	var pts []vec.Vec2
	closed := false
	flush := func() {
		r.strokePolyline(pts, closed, d)
		pts = pts[:0]
		closed = false
	}
	appendPt := func(from, to vec.Vec2) {
		if len(pts) == 0 {
			pts = append(pts, from)
		}
		pts = append(pts, to)
	}

	k := 0
	var current, start vec.Vec2
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if len(pts) > 0 {
				flush()
			}
			current = p.Coords[k]
			start = current
			pts = append(pts, current)
			k++
		case path.CmdLineTo:
			appendPt(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], appendPt)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], appendPt)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if len(pts) > 0 {
				if current != start {
					pts = append(pts, start)
				}
				closed = true
				flush()
			}
			current = start
		}
	}
	if len(pts) > 0 {
		flush()
	}

	r.beginEdges()
	for i, s := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		r.addPolygon(r.outline[s:end])
	}
	r.scan(fillNonZero, emit)
}

// strokePolyline adds the outline polygons for one flattened subpath.
// All polygons are generated with the same orientation.
func (r *Rasteriser) strokePolyline(pts []vec.Vec2, closed bool, d float64) {
	var first, last vec.Vec2 // unit tangents at the two ends
	n := 0
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		v := b.Sub(a)
		l := v.Length()
		if l < zeroLengthThreshold {
			continue
		}
		t := v.Mul(1 / l)
		if n == 0 {
			first = t
		} else {
			r.addDisk(a, d) // join
		}
		last = t
		n++

		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.beginPolygon()
		r.outline = append(r.outline, a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	if len(pts) == 0 {
		return
	}
	if n == 0 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisk(pts[0], d)
		case graphics.LineCapSquare:
			r.addSquare(pts[0], vec.Vec2{X: 1, Y: 0}, d)
		}
		return
	}
	if closed {
		r.addDisk(pts[len(pts)-1], d)
		return
	}
	r.addCap(pts[0], first.Mul(-1), d)
	r.addCap(pts[len(pts)-1], last, d)
}

// beginPolygon starts a new outline polygon.
func (r *Rasteriser) beginPolygon() {
	r.outlineStart = append(r.outlineStart, len(r.outline))
}

// addCap adds the cap at end point P of a line. T is the unit tangent
// pointing away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		// a half square, projecting by d beyond the end point
		N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		ext := P.Add(T.Mul(d))
		r.beginPolygon()
		r.outline = append(r.outline, P.Add(N), ext.Add(N), ext.Sub(N), P.Sub(N))
	case graphics.LineCapRound:
		r.addDisk(P, d)
	}
}

// addSquare adds a square of side 2d centred at c, aligned with T.
func (r *Rasteriser) addSquare(c, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
	T = T.Mul(d)
	r.beginPolygon()
	r.outline = append(r.outline,
		c.Add(T).Add(N),
		c.Add(T).Sub(N),
		c.Sub(T).Sub(N),
		c.Sub(T).Add(N),
	)
}

// addDisk adds a polygonal disk of radius d around c.
func (r *Rasteriser) addDisk(c vec.Vec2, d float64) {
	r.beginPolygon()
	r.outline = append(r.outline, r.circlePoints(c, d)...)
}

// circlePoints returns the vertices of a polygonal circle, in clockwise
// order for a y-up coordinate system. The number of vertices is a multiple
// of four, and the polygon is scaled to have the same area as the circle.
func (r *Rasteriser) circlePoints(c vec.Vec2, radius float64) []vec.Vec2 {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := minDiskVertices
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(n, 4*int(math.Ceil(math.Pi/2/step)))
		}
	}

	dphi := 2 * math.Pi / float64(n)
	radius *= math.Sqrt(dphi / math.Sin(dphi))

	res := make([]vec.Vec2, n)
	for i := range res {
		phi := -dphi * float64(i)
		res[i] = vec.Vec2{
			X: c.X + radius*math.Cos(phi),
			Y: c.Y + radius*math.Sin(phi),
		}
	}
	return res
}

// minDiskVertices is the smallest number of vertices used for a disk.
const minDiskVertices = 8
