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
	"fmt"
	"strings"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/textflow/internal/logger"
	"seehuhn.de/go/textflow/metrics"
	"seehuhn.de/go/textflow/page"
)

var (
	// ErrNoProgress is returned by [Engine.Paginate] if a fresh page
	// cannot take any of the remaining text.
	ErrNoProgress = errors.New("no text fits on an empty page")

	// ErrUnknownStrategy is returned by [ParseStrategy] for names which
	// do not denote a line breaking strategy.
	ErrUnknownStrategy = errors.New("unknown line breaking strategy")
)

// Strategy selects a line breaking algorithm for multi-font text.
type Strategy int

// These are the available line breaking strategies.
const (
	NaturalBreak Strategy = iota // see [Natural]
	NaiveBreak                   // see [Naive]
)

func (s Strategy) String() string {
	switch s {
	case NaturalBreak:
		return "natural"
	case NaiveBreak:
		return "naive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts the name of a strategy into a Strategy value.
// This is the inverse of [Strategy.String].
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "natural":
		return NaturalBreak, nil
	case "naive":
		return NaiveBreak, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

type layoutFunc func(p *page.Page, fonts *page.Fonts, q *Queue, start Point, bbox *pdf.Rectangle, opt *Options) Point

func (s Strategy) layoutFunc() layoutFunc {
	if s == NaiveBreak {
		return Naive
	}
	return Natural
}

// Engine distributes text over a sequence of pages.
type Engine struct {
	Fonts    *page.Fonts
	Strategy Strategy
	Options  *Options

	// NewPage allocates the page with index pageNo.  Text is set inside
	// the content box of the page.  If NewPage is nil, A4 pages with
	// 1 inch margins are used.
	NewPage func(pageNo int) *page.Page

	// Record, if not nil, is called for every run of text placed.
	Record func(*RunInfo)
}

// Layout sets text from q inside bbox, using the configured strategy.
// Text which does not fit is left in q.
func (e *Engine) Layout(p *page.Page, q *Queue, start Point, bbox *pdf.Rectangle) Point {
	return e.layout(0, p, q, start, bbox)
}

func (e *Engine) layout(pageNo int, p *page.Page, q *Queue, start Point, bbox *pdf.Rectangle) Point {
	before := len(p.Spans())
	stop := e.Strategy.layoutFunc()(p, e.Fonts, q, start, bbox, e.Options)
	e.record(pageNo, p.Spans()[before:])
	return stop
}

// Paginate sets all text from q, allocating new pages as needed, until
// the queue is empty.  The first baseline of each page is placed using
// the font of the first chunk on the page.
func (e *Engine) Paginate(q *Queue) ([]*page.Page, error) {
	for _, c := range q.Chunks() {
		if _, err := e.Fonts.Get(c.Font.ID); err != nil {
			return nil, err
		}
	}

	var pages []*page.Page
	for !q.Empty() {
		c := q.front()
		m := fontMetrics(e.Fonts, c.Font.ID)

		pageNo := len(pages)
		p := e.newPage(pageNo)
		start := BaselineStart(p, m, c.Font.Size)
		bbox := p.ContentBox

		n, text := q.Len(), q.Text()
		e.layout(pageNo, p, q, start, &bbox)
		if q.Len() == n && q.Text() == text {
			return pages, ErrNoProgress
		}
		pages = append(pages, p)
	}
	logger.Get().Debug("pagination done",
		"strategy", e.Strategy,
		"pages", len(pages))
	return pages, nil
}

func (e *Engine) newPage(pageNo int) *page.Page {
	if e.NewPage != nil {
		return e.NewPage(pageNo)
	}
	return page.New(page.A4, page.AllMargins(72))
}

// BaselineStart returns the start point for setting text at the top of
// the content box of p, so that text in the given font touches the top
// edge of the box.
func BaselineStart(p *page.Page, m *metrics.Font, size float64) Point {
	return Point{
		X: p.ContentBox.LLx,
		Y: p.ContentBox.URy + m.BaselineOffset(size),
	}
}
