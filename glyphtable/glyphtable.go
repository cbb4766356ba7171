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

// Package glyphtable computes the per-font tables a PDF writer embeds
// alongside a CID-keyed font: the glyph widths (the DW and W entries of
// the CIDFont dictionary), the ToUnicode CMap and the numbers for the
// font descriptor.
//
// Glyphs are used as CIDs directly (Identity-H encoding), so all tables
// are indexed by glyph ID.
package glyphtable

import (
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow/internal/logger"
	"seehuhn.de/go/textflow/metrics"
)

// Entry describes one glyph reachable from a Unicode character.
// Advance and Height are in font design units.
type Entry struct {
	GID     glyph.ID
	Rune    rune
	Advance float64
	Height  float64
}

// Table holds all tables for one font.
type Table struct {
	Entries    []Entry
	Widths     *Widths
	ToUnicode  *ToUnicode
	Descriptor *Descriptor
}

// Encode computes the tables for f.
func Encode(f *metrics.Font) *Table {
	ee := Entries(f)
	upem := f.UnitsPerEm()

	t := &Table{
		Entries:    ee,
		Widths:     EncodeWidths(ee, upem),
		ToUnicode:  EncodeToUnicode(f.Mappings()),
		Descriptor: describe(f.Face(), ee, upem),
	}

	logger.Get().Debug("glyph tables encoded",
		"glyphs", len(ee),
		"widthRuns", len(t.Widths.Runs),
		"toUnicodeBlocks", len(t.ToUnicode.Blocks))
	return t
}

// Entries lists the glyphs of f which can be reached from a Unicode
// character, sorted by glyph ID.  Glyphs without an advance are omitted.
// Glyphs without outline get a nominal height of 1000.
func Entries(f *metrics.Font) []Entry {
	face := f.Face()
	descender := float64(face.Descender())

	mm := f.Mappings()
	res := make([]Entry, 0, len(mm))
	for _, m := range mm {
		adv, ok := face.GlyphAdvance(m.GID)
		if !ok {
			continue
		}
		height := 1000.0
		if b, ok := face.GlyphBounds(m.GID); ok {
			height = float64(b.URy) - float64(b.LLy) - descender
		}
		res = append(res, Entry{
			GID:     m.GID,
			Rune:    m.Rune,
			Advance: float64(adv),
			Height:  height,
		})
	}
	return res
}
