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
	"bytes"

	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/textflow/page"
)

// Colours used by DebugOverlay.
var (
	debugBoxColor      = color.DeviceGray(0.5)
	debugGlyphColor    = color.DeviceRGB(0, 0, 0.9)
	debugBaselineColor = color.DeviceRGB(0.9, 0, 0)
)

// DebugOverlay adds drawing operators to p which visualise the layout:
// the content box is outlined by a dashed grey line, every run of text
// is enclosed in a blue box, and baselines are drawn in red.
func DebugOverlay(p *page.Page, fonts *page.Fonts) error {
	buf := &bytes.Buffer{}
	w, err := page.NewWriter(buf)
	if err != nil {
		return err
	}

	cb := p.ContentBox
	w.SetStrokeColor(debugBoxColor)
	w.SetLineDash([]float64{3, 2}, 0)
	w.SetLineWidth(0.5)
	w.Rectangle(cb.LLx, cb.LLy, cb.URx-cb.LLx, cb.URy-cb.LLy)
	w.Stroke()
	w.SetLineDash([]float64{}, 0)
	w.SetLineWidth(0.25)

	for _, s := range p.Spans() {
		ext, err := RunExtent(fonts, s)
		if err != nil {
			return err
		}

		if ext.Height+ext.Depth > 0 {
			w.SetStrokeColor(debugGlyphColor)
			w.Rectangle(s.X, s.Y-ext.Depth, ext.Width, ext.Height+ext.Depth)
			w.Stroke()
		}
		w.SetStrokeColor(debugBaselineColor)
		w.MoveTo(s.X, s.Y)
		w.LineTo(s.X+ext.Width, s.Y)
		w.Stroke()
	}
	if w.Err != nil {
		return w.Err
	}

	p.AddRaw(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}
