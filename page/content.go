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

package page

import (
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/color"
)

// FontID identifies a font within a document.  IDs are issued by
// Fonts.Add and stay valid for the lifetime of the document.
type FontID int

// FontRef selects a font and a font size for a run of text.
type FontRef struct {
	ID   FontID
	Size float64
}

// Span is a run of text placed on a page.  All characters share the same
// font and colour.  X and Y give the start of the baseline.  A nil
// Color is rendered black.
type Span struct {
	Text  string
	Font  FontRef
	Color color.Color
	X, Y  float64
}

// Content is one item in the content of a page.  The possible types are
// Text, Image, Raw and Form.
type Content interface {
	isContent()
}

// Text is a sequence of spans.
type Text []Span

// Image places the image XObject with the given index so that it fills
// Rect.
type Image struct {
	Index int
	Rect  pdf.Rectangle
}

// Raw holds content stream operators, which are enclosed in a q/Q pair
// when written.
type Raw []byte

// Form places the form XObject with the given index, using the given
// transformation matrix.
type Form struct {
	Index  int
	Matrix [6]float64
}

func (Text) isContent()  {}
func (Image) isContent() {}
func (Raw) isContent()   {}
func (Form) isContent()  {}
