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

// Package sfntface implements metrics.Face for TrueType and OpenType
// fonts read by seehuhn.de/go/sfnt.
package sfntface

import (
	"cmp"
	"io"
	"iter"
	"slices"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow/metrics"
)

// Face adapts an sfnt.Font to the metrics.Face interface.
type Face struct {
	font  *sfnt.Font
	boxes []metrics.Bounds
}

// New wraps a parsed font.
func New(font *sfnt.Font) *Face {
	bb := font.GlyphBBoxes()
	boxes := make([]metrics.Bounds, len(bb))
	for i, b := range bb {
		boxes[i] = metrics.Bounds{
			LLx: int16(b.LLx),
			LLy: int16(b.LLy),
			URx: int16(b.URx),
			URy: int16(b.URy),
		}
	}
	return &Face{font: font, boxes: boxes}
}

// Read parses a TrueType or OpenType font.
func Read(r io.Reader) (*Face, error) {
	font, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	return New(font), nil
}

// Font returns the underlying font.
func (f *Face) Font() *sfnt.Font {
	return f.font
}

// UnitsPerEm implements the metrics.Face interface.
func (f *Face) UnitsPerEm() uint16 {
	return f.font.UnitsPerEm
}

// Ascender implements the metrics.Face interface.
func (f *Face) Ascender() int16 {
	return int16(f.font.Ascent)
}

// Descender implements the metrics.Face interface.
func (f *Face) Descender() int16 {
	return int16(f.font.Descent)
}

// LineGap implements the metrics.Face interface.
func (f *Face) LineGap() int16 {
	return int16(f.font.LineGap)
}

// GlyphAdvance implements the metrics.Face interface.
func (f *Face) GlyphAdvance(gid glyph.ID) (uint16, bool) {
	if int(gid) >= f.font.NumGlyphs() {
		return 0, false
	}
	return uint16(f.font.GlyphWidth(gid)), true
}

// GlyphBounds implements the metrics.Face interface.
func (f *Face) GlyphBounds(gid glyph.ID) (metrics.Bounds, bool) {
	if int(gid) >= len(f.boxes) {
		return metrics.Bounds{}, false
	}
	b := f.boxes[gid]
	if b == (metrics.Bounds{}) {
		return b, false
	}
	return b, true
}

// UnicodeSubtables implements the metrics.Face interface.
func (f *Face) UnicodeSubtables() []iter.Seq2[rune, glyph.ID] {
	var keys []cmap.Key
	for key := range f.font.CMapTable {
		if isUnicode(key) {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b cmap.Key) int {
		if c := cmp.Compare(a.PlatformID, b.PlatformID); c != 0 {
			return c
		}
		if c := cmp.Compare(a.EncodingID, b.EncodingID); c != 0 {
			return c
		}
		return cmp.Compare(a.Language, b.Language)
	})

	var res []iter.Seq2[rune, glyph.ID]
	for _, key := range keys {
		sub, err := f.font.CMapTable.Get(key)
		if err != nil {
			continue
		}
		low, high := sub.CodeRange()
		res = append(res, func(yield func(rune, glyph.ID) bool) {
			for r := low; r <= high; r++ {
				gid := glyph.ID(sub.Lookup(r))
				if gid == 0 {
					continue
				}
				if !yield(r, gid) {
					return
				}
			}
		})
	}
	return res
}

// isUnicode reports whether a cmap subtable maps Unicode code points.
func isUnicode(key cmap.Key) bool {
	switch key.PlatformID {
	case 0:
		return true
	case 3:
		return key.EncodingID == 1 || key.EncodingID == 10
	}
	return false
}
