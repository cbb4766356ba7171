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

// Package gofont makes the Go font family available as font metrics.
package gofont

import (
	"bytes"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/textflow/metrics"
	"seehuhn.de/go/textflow/metrics/sfntface"
)

// Font identifies one of the Go fonts.
type Font int

// These are the fonts of the Go font family.
const (
	Regular Font = iota
	Bold
	Italic
	BoldItalic
	Medium
	MediumItalic
	Mono
	MonoBold
	MonoItalic
	MonoBoldItalic
	Smallcaps
	SmallcapsItalic
)

var names = [...]string{
	"GoRegular", "GoBold", "GoItalic", "GoBoldItalic",
	"GoMedium", "GoMediumItalic",
	"GoMono", "GoMonoBold", "GoMonoItalic", "GoMonoBoldItalic",
	"GoSmallcaps", "GoSmallcapsItalic",
}

func (f Font) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("gofont.Font(%d)", int(f))
	}
	return names[f]
}

// TTF returns the TrueType data of the font.
func (f Font) TTF() []byte {
	switch f {
	case Regular:
		return goregular.TTF
	case Bold:
		return gobold.TTF
	case Italic:
		return goitalic.TTF
	case BoldItalic:
		return gobolditalic.TTF
	case Medium:
		return gomedium.TTF
	case MediumItalic:
		return gomediumitalic.TTF
	case Mono:
		return gomono.TTF
	case MonoBold:
		return gomonobold.TTF
	case MonoItalic:
		return gomonoitalic.TTF
	case MonoBoldItalic:
		return gomonobolditalic.TTF
	case Smallcaps:
		return gosmallcaps.TTF
	case SmallcapsItalic:
		return gosmallcapsitalic.TTF
	default:
		return nil
	}
}

// Load parses the font and derives its metrics.
func Load(f Font) (*metrics.Font, error) {
	data := f.TTF()
	if data == nil {
		return nil, fmt.Errorf("gofont: unknown font %d", int(f))
	}
	face, err := sfntface.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gofont: %s: %w", f, err)
	}
	return metrics.New(face)
}
