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

// Package config reads layout settings from YAML files.
//
// A complete configuration file looks like this:
//
//	page:
//	  size: a4
//	  orientation: portrait
//	  margins: {top: 72, right: 72, bottom: 72, left: 72}
//	text:
//	  strategy: natural
//	  font-size: 12
//	  tab-width: 4
//	  wrap-offset: 0
//	  normalize: true
//
// Lengths are in PDF points.  Missing fields keep the values from
// [Default].
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/textflow"
	"seehuhn.de/go/textflow/page"
)

// Common errors
var (
	ErrUnknownPageSize    = errors.New("unknown page size")
	ErrUnknownOrientation = errors.New("unknown page orientation")
	ErrInvalidValue       = errors.New("invalid value")
)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config holds the settings for laying out a document.
type Config struct {
	Page PageConfig `yaml:"page"`
	Text TextConfig `yaml:"text"`
}

// PageConfig describes the page geometry.
type PageConfig struct {
	// Size is the name of a paper size, see [page.SizeByName].
	Size string `yaml:"size"`

	// Orientation is either "portrait" or "landscape".
	Orientation string `yaml:"orientation"`

	Margins MarginsConfig `yaml:"margins"`
}

// MarginsConfig gives the page margins in PDF points.
type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// TextConfig controls line breaking.
type TextConfig struct {
	// Strategy is "natural" or "naive".
	Strategy string `yaml:"strategy"`

	// FontSize is the text size in points, see [Config.FontRef].
	FontSize float64 `yaml:"font-size"`

	TabWidth   int     `yaml:"tab-width"`
	WrapOffset float64 `yaml:"wrap-offset"`
	Normalize  bool    `yaml:"normalize"`
}

// Default returns the default configuration: A4 portrait pages with
// 1 inch margins, and 12pt text broken at word boundaries.
func Default() *Config {
	return &Config{
		Page: PageConfig{
			Size:        "a4",
			Orientation: "portrait",
			Margins:     MarginsConfig{Top: 72, Right: 72, Bottom: 72, Left: 72},
		},
		Text: TextConfig{
			Strategy: "natural",
			FontSize: 12,
			TabWidth: 4,
		},
	}
}

// Parse reads a configuration from YAML data and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Message: "cannot parse YAML", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := page.SizeByName(c.Page.Size); err != nil {
		return &ConfigError{
			Field:   "page.size",
			Message: fmt.Sprintf("unknown page size %q", c.Page.Size),
			Err:     ErrUnknownPageSize,
		}
	}
	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
	default:
		return &ConfigError{
			Field:   "page.orientation",
			Message: fmt.Sprintf("unknown orientation %q", c.Page.Orientation),
			Err:     ErrUnknownOrientation,
		}
	}

	m := c.Page.Margins
	for _, v := range []struct {
		field string
		val   float64
	}{
		{"page.margins.top", m.Top},
		{"page.margins.right", m.Right},
		{"page.margins.bottom", m.Bottom},
		{"page.margins.left", m.Left},
	} {
		if v.val < 0 {
			return &ConfigError{
				Field:   v.field,
				Message: "margin must not be negative",
				Err:     ErrInvalidValue,
			}
		}
	}
	size := c.PageSize()
	if m.Left+m.Right >= size.Width || m.Top+m.Bottom >= size.Height {
		return &ConfigError{
			Field:   "page.margins",
			Message: "margins leave no room for text",
			Err:     ErrInvalidValue,
		}
	}

	if _, err := textflow.ParseStrategy(c.Text.Strategy); err != nil {
		return &ConfigError{
			Field:   "text.strategy",
			Message: fmt.Sprintf("unknown strategy %q", c.Text.Strategy),
			Err:     err,
		}
	}
	if c.Text.FontSize <= 0 {
		return &ConfigError{
			Field:   "text.font-size",
			Message: "font size must be positive",
			Err:     ErrInvalidValue,
		}
	}
	if c.Text.TabWidth < 0 {
		return &ConfigError{
			Field:   "text.tab-width",
			Message: "tab width must not be negative",
			Err:     ErrInvalidValue,
		}
	}
	return nil
}

// PageSize returns the configured paper size, in the configured
// orientation.  Unknown sizes give A4.
func (c *Config) PageSize() page.Size {
	size, err := page.SizeByName(c.Page.Size)
	if err != nil {
		size = page.A4
	}
	if strings.EqualFold(c.Page.Orientation, "landscape") {
		return size.Landscape()
	}
	return size.Portrait()
}

// Margins returns the configured page margins.
func (c *Config) Margins() page.Margins {
	m := c.Page.Margins
	return page.NewMargins(m.Top, m.Right, m.Bottom, m.Left)
}

// Options returns the layout options.
func (c *Config) Options() *textflow.Options {
	return &textflow.Options{
		WrapOffset: c.Text.WrapOffset,
		TabWidth:   c.Text.TabWidth,
		Normalize:  c.Text.Normalize,
	}
}

// FontRef selects the given font at the configured font size.
func (c *Config) FontRef(id page.FontID) page.FontRef {
	return page.FontRef{ID: id, Size: c.Text.FontSize}
}

// Strategy returns the configured line breaking strategy.
// Unknown names give [textflow.NaturalBreak].
func (c *Config) Strategy() textflow.Strategy {
	s, err := textflow.ParseStrategy(c.Text.Strategy)
	if err != nil {
		return textflow.NaturalBreak
	}
	return s
}

// Engine returns a layout engine which uses the configured settings and
// allocates pages of the configured size.
func (c *Config) Engine(fonts *page.Fonts) *textflow.Engine {
	size := c.PageSize()
	margins := c.Margins()
	return &textflow.Engine{
		Fonts:    fonts,
		Strategy: c.Strategy(),
		Options:  c.Options(),
		NewPage: func(int) *page.Page {
			return page.New(size, margins)
		},
	}
}
