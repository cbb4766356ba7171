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
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/textflow/gofont"
	"seehuhn.de/go/textflow/page"
)

func TestStrategy(t *testing.T) {
	for _, s := range []Strategy{NaturalBreak, NaiveBreak} {
		got, err := ParseStrategy(strings.ToUpper(s.String()))
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("ParseStrategy(%q) = %v", s, got)
		}
	}

	_, err := ParseStrategy("knuth-plass")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("unexpected error %v", err)
	}
	if s := Strategy(7).String(); s != "Strategy(7)" {
		t.Errorf("String() = %q", s)
	}
}

// smallPage has a content box from (10, 10) to (190, 50).
// With the test font, the baselines are at 42, 32, 22 and 12.
func smallPage(int) *page.Page {
	return page.New(page.Size{Width: 200, Height: 60}, page.AllMargins(10))
}

func TestPaginate(t *testing.T) {
	fonts, F := testFonts(t)

	var records []*RunInfo
	e := &Engine{
		Fonts:   fonts,
		NewPage: smallPage,
		Record: func(info *RunInfo) {
			records = append(records, info)
		},
	}

	q := NewQueue(Chunk{Text: strings.Repeat("aa\n", 10), Font: F})
	pages, err := e.Paginate(q)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, n := range []int{4, 4, 2} {
		if got := len(pages[i].Spans()); got != n {
			t.Errorf("page %d: %d spans, want %d", i, got, n)
		}
	}

	if len(records) != 10 {
		t.Fatalf("got %d records, want 10", len(records))
	}
	for i, info := range records {
		if want := i / 4; info.PageNo != want {
			t.Errorf("record %d: PageNo = %d, want %d", i, info.PageNo, want)
		}
	}
	want := &RunInfo{
		PageNo: 2,
		Span:   span("aa", F, 10, 32),
		BBox:   pdf.Rectangle{LLx: 10, LLy: 32, URx: 20, URy: 39},
	}
	if d := cmp.Diff(want, records[9]); d != "" {
		t.Errorf("last record (-want +got):\n%s", d)
	}
}

func TestPaginateUnknownFont(t *testing.T) {
	fonts, F := testFonts(t)
	e := &Engine{Fonts: fonts, NewPage: smallPage}

	q := NewQueue(
		Chunk{Text: "aa", Font: F},
		Chunk{Text: "bb", Font: page.FontRef{ID: 7, Size: 10}},
	)
	pages, err := e.Paginate(q)
	if !errors.Is(err, page.ErrUnknownFont) {
		t.Errorf("unexpected error %v", err)
	}
	if len(pages) != 0 || q.Len() != 2 {
		t.Errorf("%d pages produced, %d chunks left", len(pages), q.Len())
	}
}

func TestLayoutUnknownFontPanics(t *testing.T) {
	fonts, _ := testFonts(t)
	defer func() {
		if recover() == nil {
			t.Error("no panic for unknown font")
		}
	}()
	p := page.New(page.A4, page.Margins{})
	q := NewQueue(Chunk{Text: "x", Font: page.FontRef{ID: 3, Size: 10}})
	Natural(p, fonts, q, Point{0, 100}, &p.MediaBox, nil)
}

// TestRelayout checks that setting text on several pages gives the same
// lines as setting the text in one tall box.
func TestRelayout(t *testing.T) {
	m, err := gofont.Load(gofont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	fonts := &page.Fonts{}
	F := page.FontRef{ID: fonts.Add(m), Size: 11}
	text := testText + "\n\n" + testText + "\n" + testText

	type line struct {
		Text string
		X    float64
	}
	collect := func(pages ...*page.Page) []line {
		var res []line
		for _, p := range pages {
			for _, s := range p.Spans() {
				res = append(res, line{s.Text, s.X})
			}
		}
		return res
	}

	for _, strategy := range []Strategy{NaiveBreak, NaturalBreak} {
		t.Run(strategy.String(), func(t *testing.T) {
			e := &Engine{
				Fonts:    fonts,
				Strategy: strategy,
				NewPage: func(int) *page.Page {
					return page.New(page.A5, page.AllMargins(50))
				},
			}
			pages, err := e.Paginate(NewQueue(Chunk{Text: text, Font: F}))
			if err != nil {
				t.Fatal(err)
			}
			if len(pages) < 2 {
				t.Fatalf("only %d pages", len(pages))
			}

			tall := page.New(page.Size{Width: page.A5.Width, Height: 100000}, page.AllMargins(50))
			q := NewQueue(Chunk{Text: text, Font: F})
			e.Layout(tall, q, BaselineStart(tall, m, F.Size), &tall.ContentBox)
			if !q.Empty() {
				t.Fatal("text does not fit into the tall box")
			}

			if d := cmp.Diff(collect(tall), collect(pages...)); d != "" {
				t.Errorf("pagination changed the lines (-tall +pages):\n%s", d)
			}
		})
	}
}

func TestBaselineStart(t *testing.T) {
	fonts, F := testFonts(t)
	p := smallPage(0)
	got := BaselineStart(p, fontMetrics(fonts, F.ID), 10)
	if got != (Point{10, 42}) {
		t.Errorf("BaselineStart = %v, want {10 42}", got)
	}
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	fonts, F := testFonts(t)
	e := &Engine{Fonts: fonts, NewPage: smallPage}
	_, err := e.Paginate(NewQueue(Chunk{Text: strings.Repeat("x\n", 6), Font: F}))
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"layout box full", "pagination done", "pages=2"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output does not contain %q:\n%s", msg, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
