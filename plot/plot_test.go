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
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/composition"
)

// lattice returns an output on a 100x100 canvas with a 3x3 grid at
// multiples of 50 and a single horizontal line through the centre.
func lattice() *composition.Output {
	cfg := composition.DefaultConfig()
	cfg.GridWidth, cfg.GridHeight = 3, 3
	cfg.LineCount = 1
	cfg.MaskToCircle = false
	cfg.ApplyGrain = false

	g := &composition.Grid{Cols: 3, Rows: 3}
	for i := range 3 {
		for j := range 3 {
			g.Points = append(g.Points, vec.Vec2{X: 50 * float64(i), Y: 50 * float64(j)})
		}
	}
	return &composition.Output{
		Config: cfg,
		Width:  100,
		Height: 100,
		Grid:   g,
		Circle: composition.CanvasCircle(100, 100),
		Lines: []composition.Segment{
			{From: composition.GridIndex{I: 0, J: 1}, To: composition.GridIndex{I: 2, J: 1}},
		},
		Attempts: 1,
	}
}

func grayAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).R
}

func TestImageSize(t *testing.T) {
	style := DefaultStyle()
	style.Scale = 2
	img := Image(lattice(), style)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
}

func TestImageBackground(t *testing.T) {
	out := lattice()
	out.Lines = nil
	out.Config.LineCount = 0
	img := Image(out, DefaultStyle())
	for y := range 100 {
		for x := range 100 {
			c := img.RGBAAt(x, y)
			require.Equal(t, uint8(242), c.R, "pixel (%d,%d)", x, y)
			require.Equal(t, c.R, c.G)
			require.Equal(t, c.R, c.B)
			require.Equal(t, uint8(255), c.A)
		}
	}
}

func TestImageLine(t *testing.T) {
	img := Image(lattice(), DefaultStyle())

	// stroke width 8 around y = 50
	assert.Equal(t, uint8(0x28), grayAt(img, 50, 50))
	assert.Equal(t, uint8(0x28), grayAt(img, 50, 46))
	assert.Equal(t, uint8(0x28), grayAt(img, 50, 53))
	assert.Equal(t, uint8(242), grayAt(img, 50, 40))
	assert.Equal(t, uint8(242), grayAt(img, 50, 60))
}

func TestImageScale(t *testing.T) {
	style := DefaultStyle()
	style.Scale = 2
	img := Image(lattice(), style)

	// the line now covers y = 92..108
	assert.Equal(t, uint8(0x28), grayAt(img, 100, 93))
	assert.Equal(t, uint8(0x28), grayAt(img, 100, 106))
	assert.Equal(t, uint8(242), grayAt(img, 100, 85))
}

func TestImageOutlineAndGrid(t *testing.T) {
	out := lattice()
	out.Lines = nil
	out.Config.MaskToCircle = true
	out.Config.ShowGrid = true
	img := Image(out, DefaultStyle())

	// circle of radius 45 around the centre
	assert.Less(t, grayAt(img, 50, 5), uint8(242))
	assert.Less(t, grayAt(img, 50, 94), uint8(242))
	// the central grid point
	assert.Less(t, grayAt(img, 50, 50), uint8(242))
	// corner grid points are outside the circle
	assert.Equal(t, uint8(242), grayAt(img, 0, 0))
	assert.Equal(t, uint8(242), grayAt(img, 20, 20))

	out.Config.ShowCircleOutline = false
	img = Image(out, DefaultStyle())
	assert.Equal(t, uint8(242), grayAt(img, 50, 5))
}

func TestImageGrain(t *testing.T) {
	out := lattice()
	out.Lines = nil
	out.Config.ApplyGrain = true
	out.Grain = []composition.Speckle{
		{Pos: vec.Vec2{X: 20.5, Y: 20.5}, Alpha: 0.4},
	}
	img := Image(out, DefaultStyle())
	assert.Equal(t, uint8(237), grayAt(img, 20, 20))
	assert.Equal(t, uint8(242), grayAt(img, 30, 30))
}

func TestEncodePNG(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(fileName, lattice(), DefaultStyle()))

	f, err := os.Open(fileName)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
}

func TestEncodeSVG(t *testing.T) {
	out := lattice()
	out.Config.ApplyGrain = true
	out.Grain = []composition.Speckle{
		{Pos: vec.Vec2{X: 10, Y: 10}, Alpha: 0.1},
		{Pos: vec.Vec2{X: 20, Y: 10}, Alpha: 0.2},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, EncodeSVG(buf, out, DefaultStyle()))
	s := buf.String()

	assert.True(t, strings.HasPrefix(s, "<?xml"))
	assert.Contains(t, s, "<svg")
	assert.Contains(t, s, "stroke-linecap:square")
	assert.Contains(t, s, "stroke-width:8")
	assert.Contains(t, s, "#282828")
	assert.Equal(t, 1, strings.Count(s, "<line"))
	assert.Equal(t, 2, strings.Count(s, "fill-opacity"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(s), "</svg>"))
}

func TestEncodeJSON(t *testing.T) {
	out := lattice()
	buf := &bytes.Buffer{}
	require.NoError(t, EncodeJSON(buf, out))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 100.0, doc.Width)
	assert.Equal(t, 3, doc.Config.GridWidth)
	assert.True(t, doc.Complete)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, [2]int{0, 1}, doc.Lines[0].From)
	assert.Equal(t, [2]int{2, 1}, doc.Lines[0].To)
	assert.Equal(t, [2][2]float64{{0, 50}, {100, 50}}, doc.Lines[0].Pts)
	assert.Empty(t, doc.Grid)
	assert.Empty(t, doc.Grain)
}

func TestWritePDF(t *testing.T) {
	out := lattice()
	out.Config.ShowGrid = true
	out.Config.MaskToCircle = true
	out.Grain = []composition.Speckle{{Pos: vec.Vec2{X: 10, Y: 10}, Alpha: 0.1}}

	fileName := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, WritePDF(fileName, out, DefaultStyle()))

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 600, 300))
	thumb := Thumbnail(img, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), thumb.Bounds())

	tall := image.NewRGBA(image.Rect(0, 0, 30, 90))
	assert.Equal(t, image.Rect(0, 0, 10, 30), Thumbnail(tall, 30).Bounds())

	assert.Same(t, img, Thumbnail(img, 600))
	assert.Same(t, img, Thumbnail(img, 0))
}

func TestBlend(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, float64(s.Background.Y), blend(s.Background, s.Grain, 0))
	assert.Equal(t, float64(s.Grain.Y), blend(s.Background, s.Grain, 1))
}
