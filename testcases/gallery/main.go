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

// Command gallery renders every named test case as PDF, PNG and SVG.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/composition"
	"seehuhn.de/go/composition/plot"
	"seehuhn.de/go/composition/testcases"
)

const galleryDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(galleryDir, 0755); err != nil {
		panic(err)
	}

	style := plot.DefaultStyle()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(galleryDir, name), style); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// generate renders tc and writes it in all vector and raster formats,
// using base as the file name without extension.
func generate(tc testcases.TestCase, base string, style plot.Style) error {
	pipe := composition.NewPipeline(float64(tc.Width), float64(tc.Height))
	out, err := pipe.Render(tc.Config)
	if err != nil {
		return err
	}

	if err := plot.WritePDF(base+".pdf", out, style); err != nil {
		return err
	}
	if err := plot.WritePNG(base+".png", out, style); err != nil {
		return err
	}
	return plot.WriteSVG(base+".svg", out, style)
}
