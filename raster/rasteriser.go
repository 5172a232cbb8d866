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

// Package raster converts the vector primitives of a composition (filled
// shapes and stroked lines) into anti-aliased pixel coverage.
//
// Coverage is computed exactly from the signed area of the shape inside each
// pixel, so that thin lines and small grain speckles keep their intended
// weight. Coverage is delivered row by row through a callback; compositing
// onto an image is left to the caller.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// Coverage values range from 0 (outside) to 1 (inside). The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser computes pixel coverage for filled and stroked paths.
// Internal buffers grow as needed and are reused between calls, so that a
// long-lived Rasteriser does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device-space output rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of stroked lines.
	Cap graphics.LineCapStyle

	// smallPathThreshold is the largest bounding box area, in pixels, which
	// is rasterised using full 2D buffers. Larger shapes use an active edge
	// list and one row of buffer.
	smallPathThreshold int

	cover     []float32 // signed vertical coverage change per pixel; reused as output
	area      []float32 // coverage contribution within each pixel
	edges     []edge
	activeIdx []int
	rowXMax   []int // per row: largest touched column, or -1

	outline      []vec.Vec2 // stroke outline polygons, contiguous
	outlineStart []int      // start index of each polygon in outline

	bboxEmpty                  bool
	bboxX0, bboxX1, bboxY0, bboxY1 float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity CTM, unit stroke width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the defaults of [NewRasteriser] while keeping the
// capacity of all internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.smallPathThreshold = smallPathThreshold

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowXMax = r.rowXMax[:0]
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPathEdges(p)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule. Two concentric circles
// filled this way give a ring.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPathEdges(p)
	r.scan(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// beginEdges empties the edge list.
func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPathEdges flattens p into the edge list. Subpaths are closed
// implicitly, as required for filling.
func (r *Rasteriser) addPathEdges(p *path.Data) {
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}
}

// addPolygon adds the edges of a closed polygon given in user space.
func (r *Rasteriser) addPolygon(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

// addEdge transforms a user-space segment to device space and appends it to
// the edge list. Horizontal edges carry no coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(x0, x1), max(x0, x1)
		r.bboxY0, r.bboxY1 = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0, x1)
	r.bboxX1 = max(r.bboxX1, x0, x1)
	r.bboxY0 = min(r.bboxY0, y0, y1)
	r.bboxY1 = max(r.bboxY1, y0, y1)
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments
// which deviate from the curve by at most Flatness device pixels.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, choosing
// the number of segments with Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// deviceBBox returns the integer bounding box of the edge list, clamped to
// the clip rectangle.
func (r *Rasteriser) deviceBBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan rasterises the current edge list.
func (r *Rasteriser) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.deviceBBox()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.scanSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.scanLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// Coverage accumulation
//
// Each edge crossing a pixel adds to two per-pixel accumulators:
//
//	cover: the signed vertical extent of the edge within the pixel
//	area:  cover weighted by the part of the pixel right of the edge
//
// Integrating a row from left to right, the coverage of pixel i is
// sum(cover[0:i]) + area[i]. For the nonzero rule this is clamped
// to [0, 1]; for the even-odd rule it is folded into [0, 1].

// accumulate adds the contribution of e within scanline y to cover and
// area, which hold the pixels of columns bx0 to bx1-1.
func accumulate(e *edge, y int, cover, area []float32, bx0, bx1 int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixLeft := int(math.Floor(xa))
	pixRight := int(math.Floor(xb))

	if pixRight < bx0 {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bx1 {
		return
	}

	if pixLeft == pixRight {
		accumulateColumn(e, yTop, yBot, sign, pixLeft, cover, area, bx0, bx1)
		return
	}

	// The edge crosses several columns: split it at the column boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		y0 := max(min(ya, yb), yTop)
		y1 := min(max(ya, yb), yBot)
		if y1 <= y0 {
			continue
		}
		accumulateColumn(e, y0, y1, sign, pix, cover, area, bx0, bx1)
	}
}

// accumulateColumn adds the part of e between yTop and yBot, which lies
// within column pix.
func accumulateColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bx0, bx1 int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < bx0:
		cover[0] += c
		area[0] += c
	case pix < bx1:
		frac := e.xAt((yTop+yBot)/2) - float64(pix)
		idx := pix - bx0
		cover[idx] += c
		area[idx] += c * float32(1-frac)
	}
}

// integrate turns accumulated cover and area into coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == fillNonZero {
			cover[i] = min(raw, 1)
		} else {
			m := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-m)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// midColumn returns the column, relative to bx0, where e crosses the middle
// of its extent within scanline y. The second result is false if e does not
// touch the scanline.
func midColumn(e *edge, y, bx0, bx1 int) (int, bool) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return 0, false
	}
	x := int(math.Floor(e.xAt((yTop + yBot) / 2)))
	return min(max(x, bx0), bx1-1) - bx0, true
}

// scanSmall rasterises the edge list using a 2D buffer covering the whole
// bounding box.
func (r *Rasteriser) scanSmall(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowXMax = slices.Grow(r.rowXMax[:0], h)[:h]
	for i := range r.rowXMax {
		r.rowXMax[i] = -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(e.yMin())), yMin)
		y1 := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			if x, ok := midColumn(e, y, xMin, xMax); ok {
				r.rowXMax[row] = max(r.rowXMax[row], x)
			}
		}
	}

	for row := range h {
		if r.rowXMax[row] < 0 {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w], rule)
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// scanLarge rasterises the edge list one scanline at a time, keeping a list
// of the edges which cross the current scanline.
func (r *Rasteriser) scanLarge(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].yMin() < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			if _, ok := midColumn(e, y, xMin, xMax); ok {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default for Rasteriser.smallPathThreshold.
	// TODO: tune this threshold based on profiling
	smallPathThreshold = 65536

	// zeroLengthThreshold is the shortest stroked segment which is not
	// treated as a single point.
	zeroLengthThreshold = 1e-10
)
