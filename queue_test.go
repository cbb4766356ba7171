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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/textflow/page"
)

func TestQueue(t *testing.T) {
	F := page.FontRef{ID: 0, Size: 10}
	in := []Chunk{
		{Text: "one ", Font: F},
		{Text: "two ", Font: F, Color: testRed},
	}
	q := NewQueue(in...)
	q.Push(Chunk{Text: "three", Font: F})

	if q.Len() != 3 || q.Empty() {
		t.Fatalf("Len() = %d", q.Len())
	}
	if got := q.Text(); got != "one two three" {
		t.Errorf("Text() = %q", got)
	}

	q.drain(1, "wo ")
	want := []Chunk{
		{Text: "wo ", Font: F, Color: testRed},
		{Text: "three", Font: F},
	}
	if d := cmp.Diff(want, q.Chunks()); d != "" {
		t.Errorf("after drain (-want +got):\n%s", d)
	}
	if in[1].Text != "two " {
		t.Errorf("caller's chunks were modified: %q", in[1].Text)
	}
	if q.front().Text != "wo " {
		t.Errorf("front() = %v", q.front())
	}

	q.drain(2, "")
	if !q.Empty() || q.Text() != "" || q.front() != nil {
		t.Errorf("queue not empty: %v", q.Chunks())
	}

	q.Push(Chunk{Text: "again", Font: F})
	if q.Len() != 1 || q.Text() != "again" {
		t.Errorf("Push after drain: %v", q.Chunks())
	}
}

func TestQueueConsumed(t *testing.T) {
	fonts, F := testFonts(t)
	q := NewQueue(
		Chunk{Text: "aaaa", Font: F},
		Chunk{Text: "", Font: F},
		Chunk{Text: "bbbb", Font: F},
	)
	p := page.New(page.A4, page.Margins{})
	Naive(p, fonts, q, Point{0, 100}, &p.MediaBox, nil)
	if !q.Empty() {
		t.Errorf("leftover text: %v", q.Chunks())
	}
	want := []page.Span{span("aaaa", F, 0, 100), span("bbbb", F, 20, 100)}
	if d := cmp.Diff(want, p.Spans()); d != "" {
		t.Errorf("spans differ (-want +got):\n%s", d)
	}
}
