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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/textflow"
	"seehuhn.de/go/textflow/page"
)

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "field", Message: "message", Err: ErrInvalidValue}
	expected := "config error in 'field': message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Error("ConfigError does not unwrap to its cause")
	}

	err = &ConfigError{Message: "general error"}
	expected = "config error: general error"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.PageSize() != page.A4 {
		t.Errorf("PageSize() = %v, want A4", cfg.PageSize())
	}
	if cfg.Margins() != page.AllMargins(72) {
		t.Errorf("Margins() = %v", cfg.Margins())
	}
	if cfg.Strategy() != textflow.NaturalBreak {
		t.Errorf("Strategy() = %v", cfg.Strategy())
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
page:
  size: Letter
  orientation: landscape
  margins: {top: 36, right: 54, bottom: 36, left: 54}
text:
  strategy: naive
  font-size: 10
  tab-width: 8
  wrap-offset: 12
  normalize: true
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Page: PageConfig{
			Size:        "Letter",
			Orientation: "landscape",
			Margins:     MarginsConfig{Top: 36, Right: 54, Bottom: 36, Left: 54},
		},
		Text: TextConfig{
			Strategy:   "naive",
			FontSize:   10,
			TabWidth:   8,
			WrapOffset: 12,
			Normalize:  true,
		},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}

	if got := cfg.PageSize(); got != (page.Size{Width: 792, Height: 612}) {
		t.Errorf("PageSize() = %v", got)
	}
	if got := cfg.Strategy(); got != textflow.NaiveBreak {
		t.Errorf("Strategy() = %v", got)
	}
	wantOpt := &textflow.Options{WrapOffset: 12, TabWidth: 8, Normalize: true}
	if d := cmp.Diff(wantOpt, cfg.Options()); d != "" {
		t.Errorf("options mismatch (-want +got):\n%s", d)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("text:\n  font-size: 9\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Text.FontSize = 9
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
		err   error
	}{
		{"size", "page: {size: quarto}", "page.size", ErrUnknownPageSize},
		{"orientation", "page: {orientation: sideways}", "page.orientation", ErrUnknownOrientation},
		{"negative margin", "page: {margins: {left: -1}}", "page.margins.left", ErrInvalidValue},
		{"huge margins", "page: {margins: {left: 300, right: 300}}", "page.margins", ErrInvalidValue},
		{"strategy", "text: {strategy: knuth}", "text.strategy", textflow.ErrUnknownStrategy},
		{"font size", "text: {font-size: 0}", "text.font-size", ErrInvalidValue},
		{"tab width", "text: {tab-width: -2}", "text.tab-width", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var cErr *ConfigError
			if !errors.As(err, &cErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cErr.Field, tt.field)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("error %v does not match %v", err, tt.err)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("page: [1, 2"))
	var cErr *ConfigError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	err := os.WriteFile(path, []byte("page:\n  size: a5\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PageSize() != page.A5 {
		t.Errorf("PageSize() = %v, want A5", cfg.PageSize())
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load of missing file: %v", err)
	}
}

func TestEngine(t *testing.T) {
	cfg := Default()
	cfg.Page.Size = "a5"
	cfg.Page.Margins = MarginsConfig{Top: 10, Right: 20, Bottom: 30, Left: 40}

	e := cfg.Engine(&page.Fonts{})
	p := e.NewPage(3)
	wantBox := page.NewMargins(10, 20, 30, 40).Apply(p.MediaBox)
	if p.ContentBox != wantBox {
		t.Errorf("ContentBox = %v, want %v", p.ContentBox, wantBox)
	}
	if p.MediaBox.URx != page.A5.Width || p.MediaBox.URy != page.A5.Height {
		t.Errorf("MediaBox = %v", p.MediaBox)
	}
}

func TestFontRef(t *testing.T) {
	cfg, err := Parse([]byte("text:\n  font-size: 9.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := page.FontRef{ID: 2, Size: 9.5}
	if got := cfg.FontRef(2); got != want {
		t.Errorf("FontRef(2) = %v, want %v", got, want)
	}
	if got := Default().FontRef(0); got.Size != 12 {
		t.Errorf("default font size %g, want 12", got.Size)
	}
}
