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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/composition/random"
)

// Speckle is a single translucent grain point.
type Speckle struct {
	Pos   vec.Vec2
	Alpha float64 // opacity in [0, 1]
}

// GrainParams controls the grain overlay.
type GrainParams struct {
	Count    int
	AlphaMin float64
	AlphaMax float64
}

// DefaultGrain gives a light film-grain texture: 3000 speckles with
// opacities between 20/255 and 50/255.
var DefaultGrain = GrainParams{
	Count:    3000,
	AlphaMin: 20.0 / 255,
	AlphaMax: 50.0 / 255,
}

// GenerateGrain scatters p.Count speckles uniformly over a canvas of the
// given size. Three values are drawn from src per speckle: x, y and alpha.
func GenerateGrain(p GrainParams, width, height float64, src random.Source) []Speckle {
	if p.Count <= 0 {
		return nil
	}
	res := make([]Speckle, p.Count)
	for k := range res {
		x := random.Scaled(src, width)
		y := random.Scaled(src, height)
		alpha := random.Range(src, p.AlphaMin, p.AlphaMax)
		res[k] = Speckle{Pos: vec.Vec2{X: x, Y: y}, Alpha: alpha}
	}
	return res
}
