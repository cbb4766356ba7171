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

package gofont

import (
	"testing"
)

func TestLoadAll(t *testing.T) {
	for f := Regular; f <= SmallcapsItalic; f++ {
		t.Run(f.String(), func(t *testing.T) {
			m, err := Load(f)
			if err != nil {
				t.Fatal(err)
			}
			if m.UnitsPerEm() != 2048 {
				t.Errorf("unexpected units per em %d", m.UnitsPerEm())
			}
			if m.Ascent(10) <= 0 || m.Descent(10) >= 0 {
				t.Errorf("implausible ascent/descent %g/%g", m.Ascent(10), m.Descent(10))
			}
			if _, ok := m.GlyphID('A'); !ok {
				t.Error("no glyph for 'A'")
			}
		})
	}
}

func TestMonoIsMonospaced(t *testing.T) {
	m, err := Load(Mono)
	if err != nil {
		t.Fatal(err)
	}
	w := m.WidthOfText("i", 10)
	for _, r := range "MWil.0 " {
		if got := m.WidthOfText(string(r), 10); got != w {
			t.Errorf("width of %q is %g, want %g", r, got, w)
		}
	}
}

func TestUnknown(t *testing.T) {
	if _, err := Load(Font(99)); err == nil {
		t.Error("expected an error for an unknown font")
	}
	if s := Font(99).String(); s != "gofont.Font(99)" {
		t.Errorf("unexpected name %q", s)
	}
}
