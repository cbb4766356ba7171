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
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/textflow/internal/logger"
	"seehuhn.de/go/textflow/page"
)

// Spring sets text as a justified paragraph inside bbox, using a single
// font and colour.  The space between the words of each line is
// stretched or shrunk so that every line with more than one word spans
// the full width of the box.  Inter-word space is shrunk to no less than
// 80% of the width of a space character.  A word which is wider than the
// box is set on a line by itself.
//
// The first baseline is placed below the top of the box by the ascent of
// the font.  If the box fills up, the words which did not fit are
// returned, separated by single spaces.  The returned point is the start
// of the line following the last line set.
//
// Spring panics if font.ID is not in fonts.
func Spring(p *page.Page, fonts *page.Fonts, font page.FontRef, col color.Color, text string, bbox *pdf.Rectangle) (rest string, stop Point) {
	m := fontMetrics(fonts, font.ID)
	size := font.Size

	ww := tokenize(text, m, size)
	space := interWordGlue(m.WidthOfText(" ", size))
	maxWidth := bbox.URx - bbox.LLx

	y := bbox.URy + m.BaselineOffset(size)

	var spans []page.Span
	for len(ww) > 0 {
		if y < bbox.LLy+m.Descent(size) {
			break
		}

		var l line
		l, ww = fillLine(ww, space, maxWidth)

		var spacing float64
		if n := len(l.words); n > 1 {
			spacing = (maxWidth - l.width) / float64(n-1)
		}
		x := bbox.LLx
		for _, w := range l.words {
			spans = append(spans, page.Span{
				Text:  w.text,
				Font:  font,
				Color: col,
				X:     x,
				Y:     y,
			})
			x += w.width + spacing
		}

		y += m.BaselineOffset(size)
	}
	p.AddSpans(spans...)

	if len(ww) > 0 {
		logger.Get().Debug("spring box full",
			"spans", len(spans),
			"wordsLeft", len(ww))
		words := make([]string, len(ww))
		for i, w := range ww {
			words[i] = w.text
		}
		rest = strings.Join(words, " ")
	}
	return rest, Point{bbox.LLx, y}
}
