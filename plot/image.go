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
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/composition"
	"seehuhn.de/go/composition/raster"
)

// Image draws out into a new RGBA image. The image has the canvas size
// multiplied by style.Scale.
func Image(out *composition.Output, style Style) *image.RGBA {
	w, h := style.pixelSize(out.Width, out.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := style.Background
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.Y, bg.Y, bg.Y, 0xFF
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	k := style.scale()
	r.CTM = matrix.Scale(k, k)

	gridDot := style.GridPointSize / 2
	if gridDot > 0 {
		emit := paint(img, style.GridPoint, 1)
		for p := range out.GridPoints() {
			r.FillNonZero(raster.Circle(p, gridDot), emit)
		}
	}

	if out.OutlineVisible() && style.OutlineWidth > 0 {
		r.Width = style.OutlineWidth
		r.Stroke(raster.Circle(out.Circle.Center, out.Circle.Radius), paint(img, style.Outline, 1))
	}

	r.Width = float64(out.Config.StrokeWidth)
	r.Cap = style.LineCap
	emit := paint(img, style.Line, 1)
	for _, s := range out.Lines {
		a, b := out.Endpoints(s)
		r.Stroke(raster.Line(a, b), emit)
	}

	grainDot := style.GrainSize / 2
	if grainDot > 0 {
		for _, sp := range out.Grain {
			r.FillNonZero(raster.Circle(sp.Pos, grainDot), paint(img, style.Grain, sp.Alpha))
		}
	}

	return img
}

// paint returns an emitter which blends c into img, with the given opacity
// multiplied by the coverage.
func paint(img *image.RGBA, c color.Gray, alpha float64) raster.EmitFunc {
	v := float32(c.Y)
	a0 := float32(alpha)
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, cov := range coverage {
			a := cov * a0
			if a <= 0 {
				continue
			}
			px := row[4*i : 4*i+3]
			for k, old := range px {
				px[k] = uint8(float32(old)*(1-a) + v*a + 0.5)
			}
		}
	}
}

// EncodePNG writes out as a PNG image to w.
func EncodePNG(w io.Writer, out *composition.Output, style Style) error {
	return png.Encode(w, Image(out, style))
}

// WritePNG writes out as a PNG image to the named file.
func WritePNG(fileName string, out *composition.Output, style Style) error {
	return writeFile(fileName, func(w io.Writer) error {
		return EncodePNG(w, out, style)
	})
}

// WriteThumbnail writes a PNG preview of out to the named file, with the
// longer side scaled down to at most maxSide pixels.
func WriteThumbnail(fileName string, out *composition.Output, style Style, maxSide int) error {
	img := Thumbnail(Image(out, style), maxSide)
	return writeFile(fileName, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// Thumbnail scales img down so that its longer side is at most maxSide
// pixels. Smaller images are returned unchanged.
func Thumbnail(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || max(w, h) <= maxSide {
		return img
	}
	var tw, th int
	if w >= h {
		tw, th = maxSide, max(1, h*maxSide/w)
	} else {
		tw, th = max(1, w*maxSide/h), maxSide
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// writeFile creates fileName and calls write with a buffered writer for it.
func writeFile(fileName string, write func(io.Writer) error) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	composition.Logger().Debug("wrote file", "name", fileName)
	return nil
}
