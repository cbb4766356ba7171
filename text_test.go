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
	"errors"
	"testing"

	"seehuhn.de/go/textflow/internal/fontfake"
	"seehuhn.de/go/textflow/metrics"
	"seehuhn.de/go/textflow/page"
)

func TestRunExtent(t *testing.T) {
	face := fontfake.ASCII(500)
	face.Boxes[face.GIDs['g']] = metrics.Bounds{LLx: 0, LLy: -200, URx: 500, URy: 500}
	delete(face.Boxes, face.GIDs[' '])
	m, err := metrics.New(face)
	if err != nil {
		t.Fatal(err)
	}
	fonts := &page.Fonts{}
	F := page.FontRef{ID: fonts.Add(m), Size: 10}

	tests := []struct {
		text string
		want string
	}{
		{"ab", "10x(7+0)"},
		{"ag", "10x(7+2)"},
		{"g g", "15x(5+2)"},
		{"  ", "10x(0+0)"},
		{"", "0x(0+0)"},
	}
	for _, tt := range tests {
		ext, err := RunExtent(fonts, page.Span{Text: tt.text, Font: F})
		if err != nil {
			t.Fatal(err)
		}
		if got := ext.String(); got != tt.want {
			t.Errorf("%q: extent %s, want %s", tt.text, got, tt.want)
		}
	}

	_, err = RunExtent(fonts, page.Span{Text: "a", Font: page.FontRef{ID: 1}})
	if !errors.Is(err, page.ErrUnknownFont) {
		t.Errorf("unexpected error %v", err)
	}
}
