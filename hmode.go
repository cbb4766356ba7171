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

	"seehuhn.de/go/textflow/metrics"
)

// word is a piece of text between two white space characters, together
// with its width.
type word struct {
	text  string
	width float64
}

// tokenize splits a paragraph into words.
func tokenize(par string, m *metrics.Font, size float64) []word {
	fields := strings.FieldsFunc(par, isSpace)
	res := make([]word, len(fields))
	for i, f := range fields {
		res[i] = word{
			text:  f,
			width: m.WidthOfText(f, size),
		}
	}
	return res
}

// line is a list of words which are set together on one line.
type line struct {
	words []word
	width float64 // total width of the words, without spaces
}

// fillLine takes words from the front of ww until the line is full, and
// returns the line together with the remaining words.  A line is full
// once the words, separated by shrunk glue, would no longer fit into
// maxWidth.  The first word is always taken.
func fillLine(ww []word, space glue, maxWidth float64) (line, []word) {
	var l line
	for len(ww) > 0 {
		w := ww[0]
		n := len(l.words) + 1
		width := l.width + w.width
		gaps := float64(n - 1)
		if n > 1 && width+gaps*space.Length >= maxWidth {
			if width+gaps*space.minLength() > maxWidth {
				break
			}
			l.words = append(l.words, w)
			l.width = width
			ww = ww[1:]
			break
		}
		l.words = append(l.words, w)
		l.width = width
		ww = ww[1:]
	}
	return l, ww
}
