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

package glyphtable

import (
	"slices"
	"sort"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/sfnt/glyph"
)

// A WidthRun gives the widths of consecutive glyphs, starting at First.
type WidthRun struct {
	First  glyph.ID
	Widths []float64
}

// Widths is the compressed form of the glyph widths of a font, in PDF
// glyph space units (1000 units per em).  Glyphs not covered by any run
// have the default width.
type Widths struct {
	Default float64
	Runs    []WidthRun
}

// EncodeWidths scales the glyph advances to 1000 units per em and groups
// them into runs of consecutive glyph IDs.  The default width is the most
// frequent width.
func EncodeWidths(ee []Entry, unitsPerEm uint16) *Widths {
	q := 1000 / float64(unitsPerEm)

	type gidWidth struct {
		gid glyph.ID
		w   float64
	}
	ww := make([]gidWidth, len(ee))
	for i, e := range ee {
		ww[i] = gidWidth{e.GID, e.Advance * q}
	}
	slices.SortFunc(ww, func(a, b gidWidth) int {
		return int(a.gid) - int(b.gid)
	})

	hist := make(map[float64]int)
	for _, x := range ww {
		hist[x.w]++
	}
	res := &Widths{Default: mostFrequent(hist)}

	var cur *WidthRun
	for _, x := range ww {
		if cur != nil && int(x.gid) == int(cur.First)+len(cur.Widths) {
			cur.Widths = append(cur.Widths, x.w)
			continue
		}
		res.Runs = append(res.Runs, WidthRun{First: x.gid, Widths: []float64{x.w}})
		cur = &res.Runs[len(res.Runs)-1]
	}

	return res
}

// mostFrequent returns the most frequent width.  Ties are resolved in
// favour of the smaller width.  An empty histogram gives 1000.
func mostFrequent(hist map[float64]int) float64 {
	if len(hist) == 0 {
		return 1000
	}
	bestCount := 0
	bestVal := 0.0
	for wi, count := range hist {
		if count > bestCount || (count == bestCount && wi < bestVal) {
			bestCount = count
			bestVal = wi
		}
	}
	return bestVal
}

// Width returns the width of a glyph.
func (w *Widths) Width(gid glyph.ID) float64 {
	// index of the first run starting after gid
	i := sort.Search(len(w.Runs), func(i int) bool {
		return w.Runs[i].First > gid
	})
	if i > 0 {
		run := w.Runs[i-1]
		if k := int(gid) - int(run.First); k < len(run.Widths) {
			return run.Widths[k]
		}
	}
	return w.Default
}

// PDF returns the values of the DW and W entries of a CIDFont dictionary.
func (w *Widths) PDF() (pdf.Number, pdf.Array) {
	var res pdf.Array
	for _, run := range w.Runs {
		wi := make(pdf.Array, len(run.Widths))
		for i, x := range run.Widths {
			wi[i] = pdf.Number(x)
		}
		res = append(res, pdf.Integer(run.First), wi)
	}
	return pdf.Number(w.Default), res
}
