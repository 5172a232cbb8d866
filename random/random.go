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

// Package random provides the seedable pseudo-random sources which drive
// composition generation.
//
// All randomness used while rendering a composition flows through a single
// [Source]. A Source is not safe for concurrent use; concurrent renders must
// each use their own instance.
package random

import "math/rand/v2"

// Source is a seedable stream of uniform floats in [0, 1).
//
// After Seed(s), the sequence returned by successive calls to Float64 is a
// pure function of s.
type Source interface {
	Seed(seed int64)
	Float64() float64
}

// PCG is the default [Source], backed by the PCG generator from math/rand/v2.
type PCG struct {
	r *rand.Rand
}

// NewPCG returns a PCG source seeded with seed.
func NewPCG(seed int64) *PCG {
	s := &PCG{}
	s.Seed(seed)
	return s
}

// Seed resets the generator state.
func (s *PCG) Seed(seed int64) {
	s.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Float64 returns the next value in [0, 1).
func (s *PCG) Float64() float64 {
	if s.r == nil {
		s.Seed(0)
	}
	return s.r.Float64()
}

// Constants of the 32-bit linear congruential generator.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// LCG is the classic 32-bit linear congruential generator with multiplier
// 1664525, increment 1013904223 and modulus 2^32. This is the generator used
// by the Processing family of sketching tools, so seeds give the same
// sequence of values there and here.
//
// The state is the low 32 bits of the seed. Each call to Float64 advances the
// state and returns state/2^32.
type LCG struct {
	z uint32
}

// NewLCG returns an LCG source seeded with seed.
func NewLCG(seed int64) *LCG {
	s := &LCG{}
	s.Seed(seed)
	return s
}

// Seed resets the generator state.
func (s *LCG) Seed(seed int64) {
	s.z = uint32(seed)
}

// Float64 returns the next value in [0, 1).
func (s *LCG) Float64() float64 {
	s.z = uint32((lcgMultiplier*uint64(s.z) + lcgIncrement) % lcgModulus)
	return float64(s.z) / lcgModulus
}

// Scaled returns a uniform value in [0, n).
func Scaled(src Source, n float64) float64 {
	return src.Float64() * n
}

// Range returns a uniform value in [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Symmetric returns a uniform value in [-1, 1).
func Symmetric(src Source) float64 {
	return 2*src.Float64() - 1
}

// Factory creates a fresh, unseeded source. Renders call the factory once
// each, so that no generator instance is shared between renders.
type Factory func() Source

// PCGFactory is the default [Factory].
func PCGFactory() Source { return &PCG{} }

// LCGFactory returns LCG sources.
func LCGFactory() Source { return &LCG{} }

// Counter wraps a Source and counts the values drawn from it.
type Counter struct {
	Source
	N int
}

// Float64 returns the next value of the wrapped source.
func (c *Counter) Float64() float64 {
	c.N++
	return c.Source.Float64()
}
