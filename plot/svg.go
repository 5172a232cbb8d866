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
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/composition"
)

// EncodeSVG writes out as an SVG document to w.
func EncodeSVG(w io.Writer, out *composition.Output, style Style) error {
	ew := &errWriter{w: w}
	k := style.scale()

	canvas := svg.New(ew)
	canvas.Startview(out.Width*k, out.Height*k, 0, 0, out.Width, out.Height)
	canvas.Title(fmt.Sprintf("composition, seed %d", out.Config.Seed))
	canvas.Rect(0, 0, out.Width, out.Height, "fill:"+svgColor(style.Background))

	if r := style.GridPointSize / 2; r > 0 {
		canvas.Gstyle("fill:" + svgColor(style.GridPoint))
		for p := range out.GridPoints() {
			canvas.Circle(p.X, p.Y, r)
		}
		canvas.Gend()
	}

	if out.OutlineVisible() && style.OutlineWidth > 0 {
		c := out.Circle
		canvas.Circle(c.Center.X, c.Center.Y, c.Radius, fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%g", svgColor(style.Outline), style.OutlineWidth))
	}

	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:%s",
		svgColor(style.Line), out.Config.StrokeWidth, svgLineCap(style.LineCap)))
	for _, s := range out.Lines {
		a, b := out.Endpoints(s)
		canvas.Line(a.X, a.Y, b.X, b.Y)
	}
	canvas.Gend()

	if r := style.GrainSize / 2; r > 0 && len(out.Grain) > 0 {
		canvas.Gstyle("fill:" + svgColor(style.Grain))
		for _, sp := range out.Grain {
			canvas.Circle(sp.Pos.X, sp.Pos.Y, r, fmt.Sprintf("fill-opacity:%.3f", sp.Alpha))
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// WriteSVG writes out as an SVG document to the named file.
func WriteSVG(fileName string, out *composition.Output, style Style) error {
	return writeFile(fileName, func(w io.Writer) error {
		return EncodeSVG(w, out, style)
	})
}

func svgColor(c color.Gray) string {
	return fmt.Sprintf("#%02x%02x%02x", c.Y, c.Y, c.Y)
}

func svgLineCap(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// errWriter remembers the first write error. The SVG generator does not
// report errors itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
