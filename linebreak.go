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

package textflow

import (
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/textflow/metrics"
	"seehuhn.de/go/textflow/page"
)

// Naive lays out text from q inside bbox, starting with the baseline at
// start, and appends the resulting runs to p.  Lines are broken at the
// first character which would extend beyond the right edge of the box,
// even in the middle of a word.
//
// Text which does not fit into the box is left in q.  The return value is
// the position where the next glyph would have been placed.
//
// Naive panics if a chunk refers to a font which is not in fonts.
func Naive(p *page.Page, fonts *page.Fonts, q *Queue, start Point, bbox *pdf.Rectangle, opt *Options) Point {
	f := newFlow(fonts, start, bbox, opt)
	return f.layout(p, q, f.naiveChunk)
}

func (f *flow) naiveChunk(c *Chunk, m *metrics.Font, text []rune) ([]rune, bool) {
	size := c.Font.Size
	for i, r := range text {
		if r == '\n' {
			f.newLine(m, size, false)
			if !f.hasRoom(m, size) {
				return text[i+1:], true
			}
			continue
		}

		adv := m.RenderAdvance(r, size)
		if f.overflows(adv) {
			f.newLine(m, size, true)
			if !f.hasRoom(m, size) {
				return text[i:], true
			}
		}
		f.place(c, r, adv)
	}
	return nil, false
}

// breakPoint is a position on the current line after which the line can
// be broken.  The output up to the break point consists of the runs up to
// and including index run, with the last of these truncated to chars
// characters.  Layout continues at character resume of the current chunk.
type breakPoint struct {
	run    int
	chars  int
	resume int
}

// Natural is like [Naive], but breaks lines after the last white space
// character on the line, or between chunks, if possible.  Words are only
// split if they do not fit on a line by themselves.  When a line is
// broken at a break point, white space at the start of the next line is
// dropped.  A line which starts where no break point was available may
// begin with a space.
//
// Natural panics if a chunk refers to a font which is not in fonts.
func Natural(p *page.Page, fonts *page.Fonts, q *Queue, start Point, bbox *pdf.Rectangle, opt *Options) Point {
	f := newFlow(fonts, start, bbox, opt)
	return f.layout(p, q, f.naturalChunk)
}

func (f *flow) naturalChunk(c *Chunk, m *metrics.Font, text []rune) ([]rune, bool) {
	size := c.Font.Size

	var bp *breakPoint
	if f.lineInk {
		bp = f.breakHere(0)
	}

	i := 0
	for i < len(text) {
		r := text[i]
		if r == '\n' {
			bp = nil
			f.newLine(m, size, false)
			if !f.hasRoom(m, size) {
				return text[i+1:], true
			}
			i++
			continue
		}

		adv := m.RenderAdvance(r, size)
		if f.overflows(adv) {
			if bp != nil {
				f.rewind(bp)
				i = skipSpace(text, bp.resume)
				bp = nil
				f.newLine(m, size, true)
				if !f.hasRoom(m, size) {
					return text[i:], true
				}
				continue
			}

			f.newLine(m, size, true)
			if !f.hasRoom(m, size) {
				return text[i:], true
			}
		}

		f.place(c, r, adv)
		i++
		if isSpace(r) && f.lineInk {
			bp = f.breakHere(i)
		}
	}
	return nil, false
}

// breakHere records a break point after the last placed glyph.
func (f *flow) breakHere(resume int) *breakPoint {
	k := len(f.runs) - 1
	return &breakPoint{
		run:    k,
		chars:  len(f.runs[k].text),
		resume: resume,
	}
}

// rewind discards all output after the break point.
func (f *flow) rewind(bp *breakPoint) {
	f.runs = f.runs[:bp.run+1]
	last := &f.runs[bp.run]
	last.text = last.text[:bp.chars]
	f.open = false
}

// skipSpace returns the index of the first character at or after i which
// is not a line-breaking white space character.
func skipSpace(text []rune, i int) int {
	for i < len(text) && text[i] != '\n' && isSpace(text[i]) {
		i++
	}
	return i
}
