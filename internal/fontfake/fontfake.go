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

// Package fontfake provides synthetic font faces with exactly known
// metrics, for use in tests.
package fontfake

import (
	"iter"
	"slices"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow/metrics"
)

// Face is an in-memory implementation of metrics.Face.
type Face struct {
	Upem      uint16
	Asc, Desc int16
	Gap       int16

	GIDs   map[rune]glyph.ID
	Widths map[glyph.ID]uint16
	Boxes  map[glyph.ID]metrics.Bounds

	// Subtables, if set, replaces the single subtable derived from GIDs.
	Subtables []map[rune]glyph.ID
}

// New returns an empty face with the given vertical metrics.
func New(upem uint16, asc, desc, gap int16) *Face {
	return &Face{
		Upem:   upem,
		Asc:    asc,
		Desc:   desc,
		Gap:    gap,
		GIDs:   make(map[rune]glyph.ID),
		Widths: make(map[glyph.ID]uint16),
		Boxes:  make(map[glyph.ID]metrics.Bounds),
	}
}

// ASCII returns a monospaced face with 1000 units per em, ascender 800,
// descender -200 and no line gap, mapping all printable ASCII characters
// to glyphs of the given advance.
func ASCII(advance uint16) *Face {
	f := New(1000, 800, -200, 0)
	for r := rune(0x20); r < 0x7f; r++ {
		f.Add(r, advance)
	}
	return f
}

// Add maps r to a new glyph with the given advance and returns the glyph
// ID.  The glyph gets a bounding box from the baseline to 700 units.
func (f *Face) Add(r rune, advance uint16) glyph.ID {
	gid := glyph.ID(len(f.Widths) + 1)
	f.GIDs[r] = gid
	f.Widths[gid] = advance
	f.Boxes[gid] = metrics.Bounds{LLx: 0, LLy: 0, URx: int16(advance), URy: 700}
	return gid
}

func (f *Face) UnitsPerEm() uint16 { return f.Upem }
func (f *Face) Ascender() int16    { return f.Asc }
func (f *Face) Descender() int16   { return f.Desc }
func (f *Face) LineGap() int16     { return f.Gap }

func (f *Face) GlyphAdvance(gid glyph.ID) (uint16, bool) {
	w, ok := f.Widths[gid]
	return w, ok
}

func (f *Face) GlyphBounds(gid glyph.ID) (metrics.Bounds, bool) {
	b, ok := f.Boxes[gid]
	return b, ok
}

func (f *Face) UnicodeSubtables() []iter.Seq2[rune, glyph.ID] {
	tables := f.Subtables
	if tables == nil {
		if len(f.GIDs) == 0 {
			return nil
		}
		tables = []map[rune]glyph.ID{f.GIDs}
	}

	var res []iter.Seq2[rune, glyph.ID]
	for _, m := range tables {
		keys := make([]rune, 0, len(m))
		for r := range m {
			keys = append(keys, r)
		}
		slices.Sort(keys)
		res = append(res, func(yield func(rune, glyph.ID) bool) {
			for _, r := range keys {
				if !yield(r, m[r]) {
					return
				}
			}
		})
	}
	return res
}
