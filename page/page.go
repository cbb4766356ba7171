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

// Package page implements the content model of a PDF page.  A page
// collects text spans, images, form XObjects and raw drawing operators,
// in painting order, and can render them into a content stream.
package page

import (
	"seehuhn.de/go/pdf"
)

// Page is a single page under construction.
type Page struct {
	MediaBox   pdf.Rectangle
	ContentBox pdf.Rectangle
	Contents   []Content
}

// New allocates a page of the given size.  The content box is the media
// box shrunk by the margins.
func New(size Size, margins Margins) *Page {
	media := pdf.Rectangle{URx: size.Width, URy: size.Height}
	return &Page{
		MediaBox:   media,
		ContentBox: margins.Apply(media),
	}
}

// AddSpans appends a block of text to the page.
// Spans with empty text are dropped.
func (p *Page) AddSpans(spans ...Span) {
	var text Text
	for _, s := range spans {
		if s.Text != "" {
			text = append(text, s)
		}
	}
	if len(text) > 0 {
		p.Contents = append(p.Contents, text)
	}
}

// AddImage appends an image placement to the page.
func (p *Page) AddImage(index int, rect pdf.Rectangle) {
	p.Contents = append(p.Contents, Image{Index: index, Rect: rect})
}

// AddRaw appends raw content stream operators to the page.
func (p *Page) AddRaw(ops []byte) {
	p.Contents = append(p.Contents, Raw(ops))
}

// AddForm appends a form XObject placement to the page.
func (p *Page) AddForm(index int, matrix [6]float64) {
	p.Contents = append(p.Contents, Form{Index: index, Matrix: matrix})
}

// Spans returns all text spans on the page, in painting order.
func (p *Page) Spans() []Span {
	var res []Span
	for _, c := range p.Contents {
		if text, ok := c.(Text); ok {
			res = append(res, text...)
		}
	}
	return res
}
