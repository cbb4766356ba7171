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
	"fmt"

	"seehuhn.de/go/textflow/page"
)

// Extent gives the dimensions of a run of text.  Height is the distance
// from the baseline to the top of the highest glyph, Depth is the
// distance from the baseline to the bottom of the lowest glyph.
type Extent struct {
	Width, Height, Depth float64
}

func (ext Extent) String() string {
	return fmt.Sprintf("%gx(%g%+g)", ext.Width, ext.Height, ext.Depth)
}

// RunExtent computes the extent of a span from the bounding boxes of its
// glyphs.  Glyphs without outline, like spaces, only contribute their
// advance width.
func RunExtent(fonts *page.Fonts, s page.Span) (Extent, error) {
	m, err := fonts.Get(s.Font.ID)
	if err != nil {
		return Extent{}, err
	}
	size := s.Font.Size
	q := size / float64(m.UnitsPerEm())

	var ext Extent
	for _, r := range s.Text {
		gid := m.RenderGlyph(r)
		ext.Width += m.Advance(gid, size)

		b, ok := m.Face().GlyphBounds(gid)
		if !ok {
			continue
		}
		ext.Height = max(ext.Height, float64(b.URy)*q)
		ext.Depth = max(ext.Depth, -float64(b.LLy)*q)
	}
	return ext, nil
}
