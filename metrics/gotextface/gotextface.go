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

// Package gotextface implements metrics.Face on top of the font parser
// from github.com/go-text/typesetting.
package gotextface

import (
	"bytes"
	"iter"
	"math"

	"github.com/go-text/typesetting/font"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow/metrics"
)

// Face adapts a go-text font face to the metrics.Face interface.
type Face struct {
	face    *font.Face
	extents font.FontExtents
}

// New wraps a parsed face.
func New(face *font.Face) *Face {
	ext, _ := face.FontHExtents()
	return &Face{face: face, extents: ext}
}

// Parse reads a TrueType or OpenType font from memory.
func Parse(data []byte) (*Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return New(face), nil
}

// UnitsPerEm implements the [metrics.Face] interface.
func (f *Face) UnitsPerEm() uint16 {
	return f.face.Upem()
}

// Ascender implements the [metrics.Face] interface.
func (f *Face) Ascender() int16 {
	return round16(f.extents.Ascender)
}

// Descender implements the [metrics.Face] interface.
func (f *Face) Descender() int16 {
	return round16(f.extents.Descender)
}

// LineGap implements the [metrics.Face] interface.
func (f *Face) LineGap() int16 {
	return round16(f.extents.LineGap)
}

// GlyphAdvance implements the [metrics.Face] interface.
func (f *Face) GlyphAdvance(gid glyph.ID) (uint16, bool) {
	adv := f.face.HorizontalAdvance(font.GID(gid))
	if adv < 0 {
		return 0, false
	}
	return uint16(math.Round(float64(adv))), true
}

// GlyphBounds implements the [metrics.Face] interface.
func (f *Face) GlyphBounds(gid glyph.ID) (metrics.Bounds, bool) {
	ext, ok := f.face.GlyphExtents(font.GID(gid))
	if !ok || ext.Width == 0 && ext.Height == 0 {
		return metrics.Bounds{}, false
	}
	return metrics.Bounds{
		LLx: round16(ext.XBearing),
		LLy: round16(ext.YBearing + ext.Height),
		URx: round16(ext.XBearing + ext.Width),
		URy: round16(ext.YBearing),
	}, true
}

// UnicodeSubtables returns the single Unicode character map selected by
// the go-text parser.
func (f *Face) UnicodeSubtables() []iter.Seq2[rune, glyph.ID] {
	if f.face.Cmap == nil {
		return nil
	}
	seq := func(yield func(rune, glyph.ID) bool) {
		it := f.face.Cmap.Iter()
		for it.Next() {
			r, gid := it.Char()
			if gid == 0 {
				continue
			}
			if !yield(r, glyph.ID(gid)) {
				return
			}
		}
	}
	return []iter.Seq2[rune, glyph.ID]{seq}
}

func round16(x float32) int16 {
	return int16(math.Round(float64(x)))
}
