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

// Package composition generates plotter-style line compositions in the
// manner of A. Michael Noll's "Computer Composition With Lines".
//
// A composition is built from a jittered grid of points, optionally masked
// to a circle, and a set of line segments between grid points whose lengths
// and angles follow skewed, tunable distributions. An optional grain overlay
// of translucent speckles can be added on top.
//
// Generation is fully determined by a [Config] and its seed:
//
//	p := composition.NewPipeline(600, 600)
//	out, err := p.Render(composition.DefaultConfig())
//
// The resulting [Output] only contains geometry. Package
// seehuhn.de/go/composition/plot turns it into PNG, SVG, PDF or JSON files.
package composition

//go:generate go run ./testcases/export
//go:generate go run ./testcases/gallery
