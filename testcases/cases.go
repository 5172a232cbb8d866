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

package testcases

import "seehuhn.de/go/composition"

var classicCases = []TestCase{
	{
		Name:   "default",
		Config: composition.DefaultConfig(),
		Width:  600,
		Height: 600,
	},
	{
		Name: "default_no_grain",
		Config: with(composition.DefaultConfig(), func(c *composition.Config) {
			c.ApplyGrain = false
		}),
		Width:  600,
		Height: 600,
	},
}

var gridCases = []TestCase{
	{
		Name: "lattice",
		Config: with(base(1), func(c *composition.Config) {
			c.GridWidth, c.GridHeight = 16, 16
			c.Jitter = 0
			c.ShowGrid = true
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "full_jitter",
		Config: with(base(2), func(c *composition.Config) {
			c.GridWidth, c.GridHeight = 16, 16
			c.Jitter = 1
			c.ShowGrid = true
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "corners",
		Config: with(base(0), func(c *composition.Config) {
			c.GridWidth, c.GridHeight = 2, 2
			c.Jitter = 0
			c.LineCount = 1
			c.MaskToCircle = false
			c.ShowGrid = true
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "wide",
		Config: with(base(3), func(c *composition.Config) {
			c.GridWidth, c.GridHeight = 48, 12
		}),
		Width:  192,
		Height: 96,
	},
}

var maskCases = []TestCase{
	{
		Name: "off",
		Config: with(base(4), func(c *composition.Config) {
			c.MaskToCircle = false
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "no_outline",
		Config: with(base(5), func(c *composition.Config) {
			c.ShowCircleOutline = false
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "long_lines",
		Config: with(base(6), func(c *composition.Config) {
			c.MaxLineLength = 1
			c.LengthSkew = 0.5
		}),
		Width:  128,
		Height: 128,
	},
}

var lengthCases = []TestCase{
	{
		Name: "zero",
		Config: with(base(7), func(c *composition.Config) {
			c.GridWidth, c.GridHeight = 3, 3
			c.MaxLineLength = 0
			c.LineCount = 5
			c.MaskToCircle = false
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "short",
		Config: with(base(8), func(c *composition.Config) {
			c.LengthSkew = 10
			c.MaxLineLength = 0.5
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "long",
		Config: with(base(9), func(c *composition.Config) {
			c.LengthSkew = 0.1
			c.MaxLineLength = 0.3
			c.MaskToCircle = false
		}),
		Width:  128,
		Height: 128,
	},
}

var angleCases = []TestCase{
	{
		Name: "half",
		Config: with(base(10), func(c *composition.Config) {
			c.Obliquity = 0.5
			c.MaxLineLength = 0.3
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "full",
		Config: with(base(11), func(c *composition.Config) {
			c.Obliquity = 1
			c.MaxLineLength = 0.3
		}),
		Width:  128,
		Height: 128,
	},
}

var grainCases = []TestCase{
	{
		Name: "only",
		Config: with(base(12), func(c *composition.Config) {
			c.LineCount = 0
			c.ShowCircleOutline = false
			c.ApplyGrain = true
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "over_lines",
		Config: with(base(13), func(c *composition.Config) {
			c.ApplyGrain = true
		}),
		Width:  128,
		Height: 128,
	},
}
