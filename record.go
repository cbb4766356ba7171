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
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/textflow/page"
)

// RunInfo describes where a run of text was placed.
type RunInfo struct {
	// PageNo is the index of the page in the list returned by
	// [Engine.Paginate].  Runs placed by [Engine.Layout] have PageNo 0.
	PageNo int

	Span page.Span

	// BBox is the ink bounding box of the run, in PDF default user space.
	BBox pdf.Rectangle
}

// record reports the spans added to a page to the Record callback.
func (e *Engine) record(pageNo int, spans []page.Span) {
	if e.Record == nil {
		return
	}
	for _, s := range spans {
		ext, err := RunExtent(e.Fonts, s)
		if err != nil {
			// layout has already checked all fonts
			panic(err)
		}
		e.Record(&RunInfo{
			PageNo: pageNo,
			Span:   s,
			BBox: pdf.Rectangle{
				LLx: s.X,
				LLy: s.Y - ext.Depth,
				URx: s.X + ext.Width,
				URy: s.Y + ext.Height,
			},
		})
	}
}
