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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/composition/random"
)

func lattice(t *testing.T, cols, rows int, size float64) *Grid {
	t.Helper()
	g, err := BuildGrid(cols, rows, 0, size, size, random.NewPCG(0))
	require.NoError(t, err)
	return g
}

func TestSampleLinesDrawOrder(t *testing.T) {
	g := lattice(t, 3, 3, 100)
	p := SampleParams{MaxLength: 1, Obliquity: 0, Skew: 1, Count: 1}

	// start column, start row, length, angle offset, axis
	src := &seqSource{vals: []float64{0.6, 0.2, 0.9, 0.5, 0.7}}
	res := SampleLines(g, Mask{}, p, src)
	assert.Equal(t, []Segment{{From: GridIndex{1, 0}, To: GridIndex{1, 1}}}, res.Lines)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 5, src.pos)

	// a zero offset takes one more value to pick the direction
	src = &seqSource{vals: []float64{0, 0, 0, 0.5, 0.2, 0.7}}
	res = SampleLines(g, Mask{}, p, src)
	assert.Equal(t, []Segment{{From: GridIndex{0, 0}, To: GridIndex{0, 1}}}, res.Lines)
	assert.Equal(t, 6, src.pos)
}

func TestSampleLinesClampedToStart(t *testing.T) {
	g := lattice(t, 3, 3, 100)
	p := SampleParams{MaxLength: 1, Obliquity: 1, Skew: 1, Count: 1}

	src := &seqSource{vals: []float64{
		0.6, 0.2, 0.9, 0, 0.2, // straight up from (1,0): clamped back onto the start
		0.6, 0.2, 0.9, 0.5, 0.2, // to the right
	}}
	res := SampleLines(g, Mask{}, p, src)
	assert.Equal(t, []Segment{{From: GridIndex{1, 0}, To: GridIndex{2, 0}}}, res.Lines)
	assert.Equal(t, 2, res.Attempts)
}

func TestSampleLinesSmallestGrid(t *testing.T) {
	g := lattice(t, 2, 2, 64)
	for seed := range int64(20) {
		res := SampleLines(g, Mask{}, SampleParams{MaxLength: 0.1, Skew: 4, Count: 1}, random.NewPCG(seed))
		require.Len(t, res.Lines, 1)
		assert.Equal(t, 1, res.Attempts)

		s := res.Lines[0]
		assert.Equal(t, GridIndex{0, 0}, s.From)
		assert.Contains(t, []GridIndex{{1, 0}, {0, 1}}, s.To)
	}
}

func TestSampleLinesZeroLength(t *testing.T) {
	g := lattice(t, 3, 3, 64)
	res := SampleLines(g, Mask{}, SampleParams{MaxLength: 0, Skew: 4, Count: 5}, random.NewPCG(3))
	require.Len(t, res.Lines, 5)
	assert.Equal(t, 5, res.Attempts)
	for _, s := range res.Lines {
		assert.LessOrEqual(t, s.From.I, 1)
		assert.LessOrEqual(t, s.From.J, 1)
		di, dj := s.To.I-s.From.I, s.To.J-s.From.J
		assert.True(t, di == 1 && dj == 0 || di == 0 && dj == 1, "segment %v", s)
	}
}

func TestSampleLinesInvariants(t *testing.T) {
	const size = 300.0
	g, err := BuildGrid(40, 30, 0.5, size, size, random.NewPCG(11))
	require.NoError(t, err)
	m := Mask{Circle: CanvasCircle(size, size), Enabled: true}

	for _, p := range []SampleParams{
		{MaxLength: 0.1, Obliquity: 0, Skew: 4, Count: 200},
		{MaxLength: 0.5, Obliquity: 0.5, Skew: 1, Count: 200},
		{MaxLength: 1, Obliquity: 1, Skew: 0.2, Count: 200},
	} {
		res := SampleLines(g, m, p, random.NewPCG(5))
		assert.LessOrEqual(t, len(res.Lines), p.Count)
		assert.LessOrEqual(t, res.Attempts, p.Count*AttemptsPerLine)
		for _, s := range res.Lines {
			assert.NotEqual(t, s.From, s.To)
			assert.Less(t, s.From.I, g.Cols-1)
			assert.Less(t, s.From.J, g.Rows-1)
			assert.Equal(t, s.To, g.Clamp(s.To))
			assert.True(t, m.Contains(g.At(s.From)))
			assert.True(t, m.Contains(g.At(s.To)))
		}
	}
}

func TestSampleLinesAxisAligned(t *testing.T) {
	g := lattice(t, 50, 50, 100)
	res := SampleLines(g, Mask{}, SampleParams{MaxLength: 0.3, Skew: 1, Count: 100}, random.NewPCG(8))
	require.Len(t, res.Lines, 100)
	for _, s := range res.Lines {
		assert.True(t, s.From.I == s.To.I || s.From.J == s.To.J, "segment %v", s)
	}
}

func TestSampleLinesBudget(t *testing.T) {
	// all grid points lie outside the circle
	g := lattice(t, 2, 2, 100)
	m := Mask{Circle: CanvasCircle(100, 100), Enabled: true}
	res := SampleLines(g, m, SampleParams{MaxLength: 0.5, Skew: 1, Count: 2}, random.NewPCG(1))
	assert.Empty(t, res.Lines)
	assert.Equal(t, 2*AttemptsPerLine, res.Attempts)
}

func TestSampleLinesNone(t *testing.T) {
	g := lattice(t, 3, 3, 100)
	src := &random.Counter{Source: random.NewPCG(1)}
	res := SampleLines(g, Mask{}, SampleParams{MaxLength: 0.5, Skew: 1}, src)
	assert.Empty(t, res.Lines)
	assert.Zero(t, res.Attempts)
	assert.Zero(t, src.N)
}

func TestSkewedLength(t *testing.T) {
	assert.Equal(t, 0.5, SkewedLength(0.5, 1, 1))
	assert.Equal(t, 0.25, SkewedLength(0.5, 2, 1))
	assert.Equal(t, 0.0, SkewedLength(0, 4, 1))

	for _, u := range []float64{0.1, 0.5, 0.9} {
		prev := SkewedLength(u, 0.1, 1)
		for _, skew := range []float64{0.5, 1, 2, 4, 8} {
			l := SkewedLength(u, skew, 1)
			assert.LessOrEqual(t, l, prev)
			prev = l
		}
	}
}
