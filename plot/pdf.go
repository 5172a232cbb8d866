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

package plot

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/composition"
	"seehuhn.de/go/composition/raster"
)

// WritePDF writes out as a single-page PDF file. The page measures the
// canvas size times style.Scale, in PDF points.
//
// The grain is painted with opaque colours, pre-blended against the
// background.
func WritePDF(fileName string, out *composition.Output, style Style) error {
	k := style.scale()
	paper := &pdf.Rectangle{
		URx: out.Width * k,
		URy: out.Height * k,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(level(style.Background.Y)))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left; compositions use top-left.
	page.Transform(matrix.Matrix{k, 0, 0, -k, 0, paper.URy})

	if r := style.GridPointSize / 2; r > 0 {
		page.SetFillColor(pdfcolor.DeviceGray(level(style.GridPoint.Y)))
		n := 0
		for p := range out.GridPoints() {
			drawPath(page, raster.Circle(p, r))
			n++
		}
		if n > 0 {
			page.Fill()
		}
	}

	if out.OutlineVisible() && style.OutlineWidth > 0 {
		page.SetStrokeColor(pdfcolor.DeviceGray(level(style.Outline.Y)))
		page.SetLineWidth(style.OutlineWidth)
		drawPath(page, raster.Circle(out.Circle.Center, out.Circle.Radius))
		page.Stroke()
	}

	if len(out.Lines) > 0 {
		page.SetStrokeColor(pdfcolor.DeviceGray(level(style.Line.Y)))
		page.SetLineWidth(float64(out.Config.StrokeWidth))
		page.SetLineCap(style.LineCap)
		for _, s := range out.Lines {
			a, b := out.Endpoints(s)
			drawPath(page, raster.Line(a, b))
		}
		page.Stroke()
	}

	if r := style.GrainSize / 2; r > 0 {
		for _, sp := range out.Grain {
			page.SetFillColor(pdfcolor.DeviceGray(level(blend(style.Background, style.Grain, sp.Alpha))))
			drawPath(page, raster.Circle(sp.Pos, r))
			page.Fill()
		}
	}

	if err := page.Close(); err != nil {
		return err
	}
	composition.Logger().Debug("wrote file", "name", fileName)
	return nil
}

// level maps an 8-bit gray value to the range [0, 1].
func level[T uint8 | float64](y T) float64 {
	return float64(y) / 255
}

// pathBuilder is the part of the PDF content stream writer used to
// construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPath(page pathBuilder, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			page.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdQuadTo:
			// not produced by the raster shapes
			k += 2
		case path.CmdCubeTo:
			c := p.Coords[k : k+3]
			page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			k += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
