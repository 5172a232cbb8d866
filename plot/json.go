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
	"encoding/json"
	"io"

	"seehuhn.de/go/composition"
)

// Document is the JSON form of a composition. Coordinates are canvas units.
type Document struct {
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Config   jsonConfig   `json:"config"`
	Circle   jsonCircle   `json:"circle"`
	Lines    []jsonLine   `json:"lines"`
	Attempts int          `json:"attempts"`
	Complete bool         `json:"complete"`
	Grid     [][2]float64 `json:"grid,omitempty"`
	Grain    []jsonSpeck  `json:"grain,omitempty"`
}

type jsonConfig struct {
	GridWidth         int     `json:"grid_width"`
	GridHeight        int     `json:"grid_height"`
	Jitter            float64 `json:"jitter"`
	MaxLineLength     float64 `json:"max_line_length"`
	Obliquity         float64 `json:"obliquity"`
	LengthSkew        float64 `json:"length_skew"`
	LineCount         int     `json:"line_count"`
	StrokeWidth       int     `json:"stroke_width"`
	Seed              int64   `json:"seed"`
	ShowGrid          bool    `json:"show_grid"`
	MaskToCircle      bool    `json:"mask_to_circle"`
	ShowCircleOutline bool    `json:"show_circle_outline"`
	ApplyGrain        bool    `json:"apply_grain"`
}

type jsonCircle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

type jsonLine struct {
	From [2]int        `json:"from"` // grid index (i, j)
	To   [2]int        `json:"to"`
	Pts  [2][2]float64 `json:"pts"`
}

type jsonSpeck struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Alpha float64 `json:"alpha"`
}

// NewDocument converts out to its JSON form. Grid points are included
// only when they would be drawn.
func NewDocument(out *composition.Output) *Document {
	c := out.Config
	doc := &Document{
		Width:  out.Width,
		Height: out.Height,
		Config: jsonConfig{
			GridWidth:         c.GridWidth,
			GridHeight:        c.GridHeight,
			Jitter:            c.Jitter,
			MaxLineLength:     c.MaxLineLength,
			Obliquity:         c.Obliquity,
			LengthSkew:        c.LengthSkew,
			LineCount:         c.LineCount,
			StrokeWidth:       c.StrokeWidth,
			Seed:              c.Seed,
			ShowGrid:          c.ShowGrid,
			MaskToCircle:      c.MaskToCircle,
			ShowCircleOutline: c.ShowCircleOutline,
			ApplyGrain:        c.ApplyGrain,
		},
		Circle: jsonCircle{
			X: out.Circle.Center.X,
			Y: out.Circle.Center.Y,
			R: out.Circle.Radius,
		},
		Lines:    make([]jsonLine, len(out.Lines)),
		Attempts: out.Attempts,
		Complete: out.Complete(),
	}
	for i, s := range out.Lines {
		a, b := out.Endpoints(s)
		doc.Lines[i] = jsonLine{
			From: [2]int{s.From.I, s.From.J},
			To:   [2]int{s.To.I, s.To.J},
			Pts:  [2][2]float64{{a.X, a.Y}, {b.X, b.Y}},
		}
	}
	for p := range out.GridPoints() {
		doc.Grid = append(doc.Grid, [2]float64{p.X, p.Y})
	}
	for _, sp := range out.Grain {
		doc.Grain = append(doc.Grain, jsonSpeck{X: sp.Pos.X, Y: sp.Pos.Y, Alpha: sp.Alpha})
	}
	return doc
}

// EncodeJSON writes out as an indented JSON document to w.
func EncodeJSON(w io.Writer, out *composition.Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(out))
}

// WriteJSON writes out as an indented JSON document to the named file.
func WriteJSON(fileName string, out *composition.Output) error {
	return writeFile(fileName, func(w io.Writer) error {
		return EncodeJSON(w, out)
	})
}
