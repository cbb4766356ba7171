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

import "seehuhn.de/go/pdf"

// Margins separate the content box of a page from the page edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// NewMargins returns margins given in CSS order.
func NewMargins(top, right, bottom, left float64) Margins {
	return Margins{Top: top, Right: right, Bottom: bottom, Left: left}
}

// AllMargins returns equal margins on all four sides.
func AllMargins(m float64) Margins {
	return Margins{m, m, m, m}
}

// SymmetricMargins returns margins with equal top and bottom, and equal
// left and right values.
func SymmetricMargins(vertical, horizontal float64) Margins {
	return Margins{vertical, horizontal, vertical, horizontal}
}

// WithGutterLeft adds a binding gutter to the left margin.
func (m Margins) WithGutterLeft(gutter float64) Margins {
	m.Left += gutter
	return m
}

// WithGutterRight adds a binding gutter to the right margin.
func (m Margins) WithGutterRight(gutter float64) Margins {
	m.Right += gutter
	return m
}

// WithGutter adds a binding gutter on the inner side of a page in a
// two-sided document.  Pages with even index (starting from 0) are
// right-hand pages and get the gutter on the left.
func (m Margins) WithGutter(gutter float64, pageIndex int) Margins {
	if pageIndex%2 == 0 {
		return m.WithGutterLeft(gutter)
	}
	return m.WithGutterRight(gutter)
}

// Apply returns the part of rect inside the margins.
func (m Margins) Apply(rect pdf.Rectangle) pdf.Rectangle {
	return pdf.Rectangle{
		LLx: rect.LLx + m.Left,
		LLy: rect.LLy + m.Bottom,
		URx: rect.URx - m.Right,
		URy: rect.URy - m.Top,
	}
}
