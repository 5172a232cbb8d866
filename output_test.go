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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputGridPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridWidth, cfg.GridHeight = 3, 3
	out := &Output{
		Config: cfg,
		Width:  100,
		Height: 100,
		Grid:   lattice(t, 3, 3, 100),
		Circle: CanvasCircle(100, 100),
	}

	assert.Empty(t, slices.Collect(out.GridPoints()))

	out.Config.ShowGrid = true
	pts := slices.Collect(out.GridPoints())
	// only the centre lies inside the circle
	if assert.Len(t, pts, 1) {
		assert.Equal(t, 50.0, pts[0].X)
		assert.Equal(t, 50.0, pts[0].Y)
	}

	out.Config.MaskToCircle = false
	assert.Len(t, slices.Collect(out.GridPoints()), 9)
}

func TestOutputOutlineVisible(t *testing.T) {
	out := &Output{Config: DefaultConfig()}
	assert.True(t, out.OutlineVisible())

	out.Config.MaskToCircle = false
	assert.False(t, out.OutlineVisible())

	out.Config.MaskToCircle = true
	out.Config.ShowCircleOutline = false
	assert.False(t, out.OutlineVisible())
}

func TestOutputComplete(t *testing.T) {
	out := &Output{Config: Config{LineCount: 2}}
	assert.False(t, out.Complete())
	out.Lines = make([]Segment, 2)
	assert.True(t, out.Complete())
}

func TestCanvasCircle(t *testing.T) {
	c := CanvasCircle(600, 400)
	assert.Equal(t, 300.0, c.Center.X)
	assert.Equal(t, 200.0, c.Center.Y)
	assert.InDelta(t, 180.0, c.Radius, 1e-12)

	assert.True(t, c.Contains(c.Center))
	assert.False(t, c.Contains(c.Center.Add(c.Center)))
	assert.True(t, Mask{Circle: c}.Contains(c.Center.Add(c.Center)))
}
