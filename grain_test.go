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

func TestGenerateGrain(t *testing.T) {
	src := &random.Counter{Source: random.NewPCG(9)}
	grain := GenerateGrain(DefaultGrain, 600, 400, src)
	require.Len(t, grain, DefaultGrain.Count)
	assert.Equal(t, 3*DefaultGrain.Count, src.N)

	for _, sp := range grain {
		assert.GreaterOrEqual(t, sp.Pos.X, 0.0)
		assert.Less(t, sp.Pos.X, 600.0)
		assert.GreaterOrEqual(t, sp.Pos.Y, 0.0)
		assert.Less(t, sp.Pos.Y, 400.0)
		assert.GreaterOrEqual(t, sp.Alpha, DefaultGrain.AlphaMin)
		assert.Less(t, sp.Alpha, DefaultGrain.AlphaMax)
	}
}

func TestGenerateGrainOrder(t *testing.T) {
	src := &seqSource{vals: []float64{0.5, 0.25, 0}}
	grain := GenerateGrain(GrainParams{Count: 1, AlphaMin: 0.1, AlphaMax: 0.2}, 100, 40, src)
	require.Len(t, grain, 1)
	assert.Equal(t, 50.0, grain[0].Pos.X)
	assert.Equal(t, 10.0, grain[0].Pos.Y)
	assert.Equal(t, 0.1, grain[0].Alpha)
}

func TestGenerateGrainEmpty(t *testing.T) {
	assert.Nil(t, GenerateGrain(GrainParams{}, 100, 100, random.NewPCG(1)))
}
