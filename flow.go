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

// Package textflow lays out text on PDF pages.
//
// Text is given as a queue of chunks, each with its own font, size and
// colour.  The layout functions fill a rectangular box line by line and
// append the resulting runs of text to a page.  Text which does not fit
// stays in the queue, so that pagination is a loop which allocates pages
// until the queue is empty.  Three line breaking strategies are
// available: [Naive] breaks lines at the exact character which overflows
// the box, [Natural] breaks after the last whitespace on the line where
// possible, and [Spring] justifies single-font paragraphs.
package textflow

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/textflow/internal/logger"
	"seehuhn.de/go/textflow/metrics"
	"seehuhn.de/go/textflow/page"
)

// Point is a position on the page, in PDF points.
type Point struct {
	X, Y float64
}

// Options control the details of text layout.
// The zero value gives the default behaviour.
type Options struct {
	// WrapOffset is added to the x coordinate of lines which are started
	// because the previous line was full.  Lines following a newline
	// character always start at the start x coordinate.
	WrapOffset float64

	// TabWidth is the number of spaces a tab character expands to.
	// Zero selects 4.
	TabWidth int

	// Normalize enables Unicode NFC normalization of the text, so that
	// fonts with glyphs only for precomposed characters can show text
	// using combining characters.
	Normalize bool
}

func (o *Options) tabWidth() int {
	if o == nil || o.TabWidth <= 0 {
		return 4
	}
	return o.TabWidth
}

// prepare converts all line endings to "\n" and expands tabs.
func (o *Options) prepare(text string) string {
	if o != nil && o.Normalize {
		text = norm.NFC.String(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", o.tabWidth()))
}

// isSpace reports whether r is a white space character at which lines
// may be broken.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) &&
		r != 0x00A0 && // NO-BREAK SPACE
		r != 0x2007 && // FIGURE SPACE
		r != 0x202F // NARROW NO-BREAK SPACE
}

// run is a span of text under construction.
type run struct {
	span page.Span
	text []rune
}

// flow is the state of one layout call.
type flow struct {
	fonts *page.Fonts
	start Point
	bbox  *pdf.Rectangle
	opt   *Options

	x, y float64

	runs []run
	open bool // whether placed glyphs extend the last run

	lineGlyphs int  // number of glyphs on the current line
	lineInk    bool // whether the current line has a non-space glyph
}

func newFlow(fonts *page.Fonts, start Point, bbox *pdf.Rectangle, opt *Options) *flow {
	return &flow{
		fonts: fonts,
		start: start,
		bbox:  bbox,
		opt:   opt,
		x:     start.X,
		y:     start.Y,
	}
}

// chunkFunc lays out the text of one chunk.  If the box fills up, the
// function returns the unused part of the text and stop=true.
type chunkFunc func(c *Chunk, m *metrics.Font, text []rune) (rest []rune, stop bool)

// layout feeds the chunks from q to fn, until either the queue is empty
// or the box is full.  The runs are then added to p.
func (f *flow) layout(p *page.Page, q *Queue, fn chunkFunc) Point {
	for idx := q.pos; idx < len(q.chunks); idx++ {
		c := &q.chunks[idx]
		m := fontMetrics(f.fonts, c.Font.ID)
		f.open = false

		rest, stop := fn(c, m, []rune(f.opt.prepare(c.Text)))
		if stop {
			q.drain(idx, string(rest))
			f.flush(p)
			logger.Get().Debug("layout box full",
				"runs", len(f.runs),
				"chunksLeft", q.Len())
			return Point{f.x, f.y}
		}
	}
	q.drain(len(q.chunks), "")
	f.flush(p)
	return Point{f.x, f.y}
}

func (f *flow) flush(p *page.Page) {
	spans := make([]page.Span, 0, len(f.runs))
	for _, r := range f.runs {
		r.span.Text = string(r.text)
		spans = append(spans, r.span)
	}
	p.AddSpans(spans...)
	f.runs = nil
}

// place appends one glyph to the current line.
func (f *flow) place(c *Chunk, r rune, advance float64) {
	if !f.open {
		f.runs = append(f.runs, run{
			span: page.Span{
				Font:  c.Font,
				Color: c.Color,
				X:     f.x,
				Y:     f.y,
			},
		})
		f.open = true
	}
	last := &f.runs[len(f.runs)-1]
	last.text = append(last.text, r)
	f.x += advance
	f.lineGlyphs++
	if !isSpace(r) {
		f.lineInk = true
	}
}

// overflows reports whether a glyph of the given advance must go on a new
// line.  The first glyph of a line is always accepted.
func (f *flow) overflows(advance float64) bool {
	return f.lineGlyphs > 0 && f.x+advance >= f.bbox.URx
}

// newLine moves to the start of the next line.
func (f *flow) newLine(m *metrics.Font, size float64, wrapped bool) {
	f.x = f.start.X
	if wrapped && f.opt != nil {
		f.x += f.opt.WrapOffset
	}
	f.y -= m.LineHeight(size)
	f.open = false
	f.lineGlyphs = 0
	f.lineInk = false
}

// hasRoom reports whether the current line fits above the bottom of the
// box.
func (f *flow) hasRoom(m *metrics.Font, size float64) bool {
	return f.y >= f.bbox.LLy+m.Descent(size)
}

func fontMetrics(fonts *page.Fonts, id page.FontID) *metrics.Font {
	m, err := fonts.Get(id)
	if err != nil {
		panic(err)
	}
	return m
}
