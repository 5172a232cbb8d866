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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/composition/random"
)

// GridIndex identifies a grid point by column I and row J.
type GridIndex struct {
	I, J int
}

// Grid is a dense arrangement of jittered points.
// Column i, row j is stored at Points[i*Rows+j].
type Grid struct {
	Cols, Rows int
	Points     []vec.Vec2
}

// At returns the point at the given index.
func (g *Grid) At(idx GridIndex) vec.Vec2 {
	return g.Points[idx.I*g.Rows+idx.J]
}

// Clamp moves idx into the valid index range of the grid.
func (g *Grid) Clamp(idx GridIndex) GridIndex {
	return GridIndex{
		I: max(0, min(g.Cols-1, idx.I)),
		J: max(0, min(g.Rows-1, idx.J)),
	}
}

// BuildGrid places cols x rows points on a canvas of the given size.
//
// Without jitter, point (i, j) lies at (i/(cols-1)*width, j/(rows-1)*height),
// so that the outermost points lie on the canvas border. Jitter displaces
// each coordinate independently by up to jitter grid cells. Two values are
// drawn from src per point, first for x then for y, with i in the outer loop
// and j in the inner loop.
func BuildGrid(cols, rows int, jitter, width, height float64, src random.Source) (*Grid, error) {
	if cols < MinGridSize || rows < MinGridSize {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfiguration, cols, rows)
	}

	g := &Grid{
		Cols:   cols,
		Rows:   rows,
		Points: make([]vec.Vec2, cols*rows),
	}
	nx := float64(cols - 1)
	ny := float64(rows - 1)
	k := 0
	for i := range cols {
		for j := range rows {
			x := (float64(i) + jitter*random.Symmetric(src)) / nx * width
			y := (float64(j) + jitter*random.Symmetric(src)) / ny * height
			g.Points[k] = vec.Vec2{X: x, Y: y}
			k++
		}
	}
	return g, nil
}
