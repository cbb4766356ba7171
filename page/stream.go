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
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// NewWriter returns a graphics writer which emits content stream
// operators to out.  The writer is not attached to a PDF file: only
// operators which need no resource embedding can be used.
func NewWriter(out io.Writer) (*graphics.Writer, error) {
	doc, err := pdf.NewWriter(io.Discard, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return graphics.NewWriter(out, pdf.NewResourceManager(doc)), nil
}

// ContentStream renders the page contents as PDF content stream
// operators.  Font n is referred to by the resource name /Fn, image n
// by /In and form XObject n by /Xn.  Text is shown using two-byte glyph
// IDs, as for a composite font with Identity-H encoding.
func (p *Page) ContentStream(fonts *Fonts) ([]byte, error) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf)
	if err != nil {
		return nil, err
	}

	for _, c := range p.Contents {
		switch c := c.(type) {
		case Text:
			for _, s := range c {
				err := showSpan(w, fonts, s)
				if err != nil {
					return nil, err
				}
			}
		case Image:
			r := c.Rect
			w.PushGraphicsState()
			w.Transform(matrix.Matrix{r.URx - r.LLx, 0, 0, r.URy - r.LLy, r.LLx, r.LLy})
			useResource(w, fmt.Sprintf("I%d", c.Index))
			w.PopGraphicsState()
		case Raw:
			w.PushGraphicsState()
			if w.Err == nil {
				_, w.Err = w.Content.Write(c)
			}
			if w.Err == nil {
				_, w.Err = io.WriteString(w.Content, "\n")
			}
			w.PopGraphicsState()
		case Form:
			w.PushGraphicsState()
			w.Transform(matrix.Matrix(c.Matrix))
			useResource(w, fmt.Sprintf("X%d", c.Index))
			w.PopGraphicsState()
		default:
			panic(fmt.Sprintf("unexpected content type %T", c))
		}
		if w.Err != nil {
			return nil, w.Err
		}
	}
	return buf.Bytes(), nil
}

func showSpan(w *graphics.Writer, fonts *Fonts, s Span) error {
	f, err := fonts.Get(s.Font.ID)
	if err != nil {
		return err
	}

	col := s.Color
	if col == nil {
		col = color.DeviceGray(0)
	}

	w.PushGraphicsState()
	w.SetFillColor(col)
	w.TextBegin()
	w.TextFirstLine(s.X, s.Y)

	// The fonts are referenced by ID and are never embedded through the
	// writer's resource manager, so Tf and Tj are written directly.
	if w.Err == nil {
		w.Err = pdf.Format(w.Content, pdf.OptContentStream,
			pdf.Name(fmt.Sprintf("F%d", int(s.Font.ID))), pdf.Number(s.Font.Size), pdf.Operator("Tf"))
	}
	if w.Err == nil {
		gids := make([]byte, 0, 4*len(s.Text)+6)
		gids = append(gids, "\n<"...)
		for _, r := range s.Text {
			gids = fmt.Appendf(gids, "%04x", uint16(f.RenderGlyph(r)))
		}
		gids = append(gids, "> Tj\n"...)
		_, w.Err = w.Content.Write(gids)
	}

	w.TextEnd()
	w.PopGraphicsState()
	return w.Err
}

// useResource paints the XObject with the given resource name.
func useResource(w *graphics.Writer, name string) {
	if w.Err != nil {
		return
	}
	w.Err = pdf.Format(w.Content, pdf.OptContentStream, pdf.Name(name), pdf.Operator("Do"))
	if w.Err == nil {
		_, w.Err = io.WriteString(w.Content, "\n")
	}
}
