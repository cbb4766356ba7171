// seehuhn.de/go/textflow - flowing text into PDF pages
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package glyphtable

import (
	"math"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/textflow/metrics"
)

// Descriptor holds the numeric entries of a PDF font descriptor, in
// glyph space units (1000 units per em).
type Descriptor struct {
	FontBBox     pdf.Rectangle
	Ascent       float64
	Descent      float64
	Leading      float64
	MaxHeight    float64
	MaxWidth     float64
	AvgWidth     float64
	IsFixedPitch bool
}

func describe(face metrics.Face, ee []Entry, unitsPerEm uint16) *Descriptor {
	q := 1000 / float64(unitsPerEm)
	asc := float64(face.Ascender())
	desc := float64(face.Descender())

	d := &Descriptor{
		Ascent:       math.Round(asc * q),
		Descent:      math.Round(desc * q),
		Leading:      math.Round((asc - desc + float64(face.LineGap())) * q),
		IsFixedPitch: len(ee) > 0,
	}

	bbox := pdf.Rectangle{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	total := 0.0
	for i, e := range ee {
		total += e.Advance
		d.MaxWidth = math.Max(d.MaxWidth, e.Advance)
		d.MaxHeight = math.Max(d.MaxHeight, e.Height)
		if i > 0 && e.Advance != ee[0].Advance {
			d.IsFixedPitch = false
		}

		b, ok := face.GlyphBounds(e.GID)
		if !ok {
			continue
		}
		bbox.LLx = math.Min(bbox.LLx, float64(b.LLx))
		bbox.LLy = math.Min(bbox.LLy, float64(b.LLy))
		bbox.URx = math.Max(bbox.URx, float64(b.URx))
		bbox.URy = math.Max(bbox.URy, float64(b.URy))
	}
	if bbox.LLx <= bbox.URx {
		d.FontBBox = pdf.Rectangle{
			LLx: math.Floor(bbox.LLx * q),
			LLy: math.Floor(bbox.LLy * q),
			URx: math.Ceil(bbox.URx * q),
			URy: math.Ceil(bbox.URy * q),
		}
	}
	d.MaxWidth = math.Round(d.MaxWidth * q)
	d.MaxHeight = math.Round(d.MaxHeight * q)
	if len(ee) > 0 {
		d.AvgWidth = math.Round(total / float64(len(ee)) * q)
	}
	return d
}
