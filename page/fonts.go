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
	"fmt"

	"seehuhn.de/go/textflow/glyphtable"
	"seehuhn.de/go/textflow/metrics"
)

// ErrUnknownFont is returned when a FontID was not issued by the Fonts
// object it is used with.
var ErrUnknownFont = errors.New("page: unknown font")

// Fonts is the set of fonts used by a document.
type Fonts struct {
	fonts  []*metrics.Font
	tables []*glyphtable.Table
}

// Add registers a font and returns its ID.
func (fs *Fonts) Add(f *metrics.Font) FontID {
	fs.fonts = append(fs.fonts, f)
	fs.tables = append(fs.tables, nil)
	return FontID(len(fs.fonts) - 1)
}

// Len returns the number of registered fonts.
func (fs *Fonts) Len() int {
	return len(fs.fonts)
}

// Get returns the metrics of a registered font.
func (fs *Fonts) Get(id FontID) (*metrics.Font, error) {
	if id < 0 || int(id) >= len(fs.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, int(id))
	}
	return fs.fonts[id], nil
}

// Table returns the glyph tables of a font.  The tables are computed on
// first use and cached afterwards.
func (fs *Fonts) Table(id FontID) (*glyphtable.Table, error) {
	f, err := fs.Get(id)
	if err != nil {
		return nil, err
	}
	if fs.tables[id] == nil {
		fs.tables[id] = glyphtable.Encode(f)
	}
	return fs.tables[id], nil
}

// Tables returns the glyph tables of all registered fonts.
func (fs *Fonts) Tables() map[FontID]*glyphtable.Table {
	res := make(map[FontID]*glyphtable.Table, len(fs.fonts))
	for i := range fs.fonts {
		id := FontID(i)
		res[id], _ = fs.Table(id)
	}
	return res
}
