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
	"errors"
	"strings"
)

// Size is the width and height of a page, in points.
type Size struct {
	Width, Height float64
}

// Common page sizes, in portrait orientation.
var (
	Letter  = Size{Inch(8.5), Inch(11)}
	Legal   = Size{Inch(8.5), Inch(14)}
	Tabloid = Size{Inch(11), Inch(17)}
	A3      = Size{MM(297), MM(420)}
	A4      = Size{MM(210), MM(297)}
	A5      = Size{MM(148), MM(210)}
	B4      = Size{MM(250), MM(353)}
	B5      = Size{MM(176), MM(250)}
)

var sizeNames = map[string]Size{
	"letter":  Letter,
	"legal":   Legal,
	"tabloid": Tabloid,
	"a3":      A3,
	"a4":      A4,
	"a5":      A5,
	"b4":      B4,
	"b5":      B5,
}

// ErrUnknownSize is returned by SizeByName for unsupported names.
var ErrUnknownSize = errors.New("page: unknown page size")

// SizeByName returns the page size with the given name, ignoring case.
func SizeByName(name string) (Size, error) {
	s, ok := sizeNames[strings.ToLower(name)]
	if !ok {
		return Size{}, ErrUnknownSize
	}
	return s, nil
}

// Portrait returns the size with the longer side vertical.
func (s Size) Portrait() Size {
	if s.Width > s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// Landscape returns the size with the longer side horizontal.
func (s Size) Landscape() Size {
	if s.Height > s.Width {
		return Size{s.Height, s.Width}
	}
	return s
}
