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

// Package metrics answers the font questions asked while laying out text:
// vertical metrics, glyph advances and the mapping from characters to
// glyphs.
//
// All lengths returned by methods taking a size argument are in PDF
// points; size is the font size in points.
package metrics

import (
	"errors"
	"iter"
	"slices"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow/internal/logger"
)

// Bounds is a glyph bounding box in font design units.
type Bounds struct {
	LLx, LLy, URx, URy int16
}

// Face is the parsed outline font a Font is built from.
type Face interface {
	UnitsPerEm() uint16

	// Ascender, Descender and LineGap are in font design units.
	// The descender is negative for fonts which extend below the baseline.
	Ascender() int16
	Descender() int16
	LineGap() int16

	// GlyphAdvance returns the horizontal advance of a glyph.
	// The second return value is false if the font has no advance for gid.
	GlyphAdvance(gid glyph.ID) (uint16, bool)

	// GlyphBounds returns the bounding box of a glyph.
	// The second return value is false for glyphs without outline.
	GlyphBounds(gid glyph.ID) (Bounds, bool)

	// UnicodeSubtables returns one sequence per character map subtable
	// with Unicode encoding.  Each sequence yields (character, glyph)
	// pairs in increasing character order.
	UnicodeSubtables() []iter.Seq2[rune, glyph.ID]
}

// Mapping associates a glyph with the character it represents.
type Mapping struct {
	GID  glyph.ID
	Rune rune
}

var (
	// ErrNoUnicodeCMap indicates a font without any Unicode character map.
	ErrNoUnicodeCMap = errors.New("metrics: font has no Unicode character map")

	// ErrNoFallbackGlyph indicates a font without a glyph for '?'.
	ErrNoFallbackGlyph = errors.New("metrics: font has no glyph for '?'")

	// ErrInvalidUnitsPerEm indicates a font with zero units per em.
	ErrInvalidUnitsPerEm = errors.New("metrics: invalid units per em")
)

// Font holds the metrics of one font, together with the character maps
// derived from it.  A Font is immutable and can be shared between
// goroutines.
type Font struct {
	face Face

	unitsPerEm float64
	ascent     float64
	descent    float64
	lineGap    float64

	cmap  map[rune]glyph.ID
	names map[glyph.ID]rune

	replacement glyph.ID // 0 if the font has no U+FFFD glyph
	question    glyph.ID
}

// New derives the metrics and character maps of a font.
//
// An error is returned if the font has no Unicode character map, or if the
// font has no glyph for '?', since in either case some text could not be
// rendered.
func New(face Face) (*Font, error) {
	upem := face.UnitsPerEm()
	if upem == 0 {
		return nil, ErrInvalidUnitsPerEm
	}

	f := &Font{
		face:       face,
		unitsPerEm: float64(upem),
		ascent:     float64(face.Ascender()),
		descent:    float64(face.Descender()),
		lineGap:    float64(face.LineGap()),
		cmap:       make(map[rune]glyph.ID),
		names:      make(map[glyph.ID]rune),
	}
	for _, sub := range face.UnicodeSubtables() {
		for r, gid := range sub {
			if gid == 0 {
				continue
			}
			if _, seen := f.cmap[r]; !seen {
				f.cmap[r] = gid
			}
			if _, seen := f.names[gid]; !seen {
				f.names[gid] = r
			}
		}
	}
	if len(f.cmap) == 0 {
		return nil, ErrNoUnicodeCMap
	}

	q, ok := f.cmap['?']
	if !ok {
		return nil, ErrNoFallbackGlyph
	}
	f.question = q
	f.replacement = f.cmap[0xFFFD]

	return f, nil
}

// Face returns the font face the metrics were derived from.
func (f *Font) Face() Face {
	return f.face
}

// UnitsPerEm returns the number of font design units per em.
func (f *Font) UnitsPerEm() uint16 {
	return uint16(f.unitsPerEm)
}

func (f *Font) scale(size, v float64) float64 {
	return size / f.unitsPerEm * v
}

// Ascent returns the ascent of the font at the given size.
func (f *Font) Ascent(size float64) float64 {
	return f.scale(size, f.ascent)
}

// Descent returns the descent of the font at the given size.
// This is normally negative.
func (f *Font) Descent(size float64) float64 {
	return f.scale(size, f.descent)
}

// LineGap returns the extra space the font recommends between lines.
func (f *Font) LineGap(size float64) float64 {
	return f.scale(size, f.lineGap)
}

// LineHeight returns the distance between consecutive baselines.
func (f *Font) LineHeight(size float64) float64 {
	return f.LineGap(size) + f.Ascent(size) - f.Descent(size)
}

// BaselineOffset returns the vertical offset from the top of a line
// to its baseline.
func (f *Font) BaselineOffset(size float64) float64 {
	return -f.Ascent(size)
}

// GlyphID returns the glyph for character r.
func (f *Font) GlyphID(r rune) (glyph.ID, bool) {
	gid, ok := f.cmap[r]
	return gid, ok
}

// Advance returns the advance width of a glyph.
// Glyphs without an advance have width 0.
func (f *Font) Advance(gid glyph.ID, size float64) float64 {
	adv, ok := f.face.GlyphAdvance(gid)
	if !ok {
		return 0
	}
	return f.scale(size, float64(adv))
}

// WidthOfText returns the total advance of all characters in text which
// are mapped to a glyph.  Characters without a glyph are ignored.
func (f *Font) WidthOfText(text string, size float64) float64 {
	width := 0.0
	for _, r := range text {
		if gid, ok := f.cmap[r]; ok {
			width += f.Advance(gid, size)
		}
	}
	return width
}

// RenderGlyph returns the glyph used to show r.  Characters without a
// glyph are shown using the replacement character U+FFFD if the font has
// one, and as '?' otherwise.
func (f *Font) RenderGlyph(r rune) glyph.ID {
	gid, substituted := f.lookup(r)
	if substituted {
		logger.Get().Debug("glyph substituted",
			"char", string(r), "code", int(r), "gid", int(gid))
	}
	return gid
}

// RenderAdvance returns the advance of the glyph RenderGlyph selects for r.
func (f *Font) RenderAdvance(r rune, size float64) float64 {
	gid, _ := f.lookup(r)
	return f.Advance(gid, size)
}

func (f *Font) lookup(r rune) (glyph.ID, bool) {
	if gid, ok := f.cmap[r]; ok {
		return gid, false
	}
	if f.replacement != 0 {
		return f.replacement, true
	}
	return f.question, true
}

// Mappings returns, for every glyph reachable from a character, the first
// character mapped to it.  The result is sorted by glyph ID.
func (f *Font) Mappings() []Mapping {
	res := make([]Mapping, 0, len(f.names))
	for gid, r := range f.names {
		res = append(res, Mapping{GID: gid, Rune: r})
	}
	slices.SortFunc(res, func(a, b Mapping) int {
		return int(a.GID) - int(b.GID)
	})
	return res
}
