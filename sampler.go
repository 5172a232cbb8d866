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
	"math"

	"seehuhn.de/go/composition/random"
)

// AttemptsPerLine bounds the work of [SampleLines]: at most
// AttemptsPerLine*Count candidates are tried.
const AttemptsPerLine = 10000

// Segment is a line between two grid points.
type Segment struct {
	From, To GridIndex
}

// SampleParams controls the distribution of sampled lines.
type SampleParams struct {
	MaxLength float64 // maximal length, as a fraction of the grid extent
	Obliquity float64 // angular spread, 0-1
	Skew      float64 // length skew exponent, > 0
	Count     int     // number of lines to place
}

// SampleResult holds the lines accepted by [SampleLines].
type SampleResult struct {
	Lines    []Segment
	Attempts int
}

// SkewedLength maps a uniform sample u in [0, 1) to a line length in
// [0, maxLength). For fixed u, the result is non-increasing in skew.
func SkewedLength(u, skew, maxLength float64) float64 {
	return math.Pow(u, skew) * maxLength
}

// SampleLines places up to p.Count lines on the grid by rejection sampling.
//
// Each attempt picks a start point, whose column and row exclude the last
// column and row of the grid, and a length and direction. The direction is
// horizontal or vertical with equal probability, rotated by up to
// p.Obliquity quarter turns. The resulting offset is rounded down to whole
// grid steps; a zero offset is replaced by a single step right or down.
// The end point is clamped to the grid. The candidate is accepted if both
// endpoints pass the mask and the two endpoints differ.
//
// Each attempt draws five values from src, in the order start column, start
// row, length, angle offset, axis, plus one more when the zero offset is
// replaced.
//
// Sampling stops after p.Count lines or p.Count*[AttemptsPerLine] attempts,
// whichever comes first. Running out of attempts is not an error; the
// result then holds fewer lines than requested.
func SampleLines(g *Grid, m Mask, p SampleParams, src random.Source) SampleResult {
	if p.Count <= 0 {
		return SampleResult{}
	}

	w := float64(g.Cols - 1)
	h := float64(g.Rows - 1)
	maxAttempts := p.Count * AttemptsPerLine

	res := SampleResult{
		Lines: make([]Segment, 0, p.Count),
	}
	for len(res.Lines) < p.Count && res.Attempts < maxAttempts {
		res.Attempts++

		from := GridIndex{
			I: int(random.Scaled(src, w)),
			J: int(random.Scaled(src, h)),
		}

		dr := SkewedLength(src.Float64(), p.Skew, p.MaxLength)

		offset := random.Symmetric(src) * p.Obliquity * math.Pi / 2
		theta := offset
		if src.Float64() >= 0.5 {
			theta += math.Pi / 2
		}

		di := int(math.Floor(dr * math.Cos(theta) * w))
		dj := int(math.Floor(dr * math.Sin(theta) * h))
		if di == 0 && dj == 0 {
			if src.Float64() < 0.5 {
				di = 1
			} else {
				dj = 1
			}
		}

		to := g.Clamp(GridIndex{I: from.I + di, J: from.J + dj})
		if to == from {
			// the step was clamped away at the grid border
			continue
		}
		if !m.Contains(g.At(from)) || !m.Contains(g.At(to)) {
			continue
		}
		res.Lines = append(res.Lines, Segment{From: from, To: to})
	}
	return res
}
