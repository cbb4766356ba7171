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
	"slices"
	"strings"

	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/textflow/page"
)

// Chunk is a piece of text in a single font and colour.
type Chunk struct {
	Text  string
	Font  page.FontRef
	Color color.Color
}

// Queue holds the text waiting to be laid out.
//
// Layout functions consume text from the front of the queue.  When a
// layout box is full, the queue keeps exactly the text which did not fit,
// with a partially used chunk replaced by its remainder.
type Queue struct {
	chunks []Chunk
	pos    int
}

// NewQueue returns a queue holding the given chunks.
func NewQueue(chunks ...Chunk) *Queue {
	return &Queue{chunks: slices.Clone(chunks)}
}

// Push appends chunks to the end of the queue.
func (q *Queue) Push(chunks ...Chunk) {
	q.chunks = append(q.chunks, chunks...)
}

// Len returns the number of chunks in the queue.
func (q *Queue) Len() int {
	return len(q.chunks) - q.pos
}

// Empty reports whether all text has been consumed.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Chunks returns the chunks remaining in the queue.
func (q *Queue) Chunks() []Chunk {
	res := make([]Chunk, q.Len())
	copy(res, q.chunks[q.pos:])
	return res
}

// Text returns the concatenated text of all remaining chunks.
func (q *Queue) Text() string {
	var b strings.Builder
	for _, c := range q.chunks[q.pos:] {
		b.WriteString(c.Text)
	}
	return b.String()
}

// drain removes all chunks before index idx.  If rest is non-empty, the
// chunk at idx is replaced by rest, otherwise it is removed, too.
func (q *Queue) drain(idx int, rest string) {
	if idx < len(q.chunks) {
		if rest != "" {
			q.chunks[idx].Text = rest
		} else {
			idx++
		}
	}
	if idx >= len(q.chunks) {
		q.chunks = q.chunks[:0]
		q.pos = 0
		return
	}
	q.pos = idx
}

// front returns the first remaining chunk.
func (q *Queue) front() *Chunk {
	if q.Empty() {
		return nil
	}
	return &q.chunks[q.pos]
}
