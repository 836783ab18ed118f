// Package config loads editor settings from a TOML file and watches it
// for live reload.
//
// A missing config file is not an error; defaults apply. Invalid values
// are clamped into range rather than rejected so a hand-edited file can
// never leave the editor unusable.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable editor settings.
type Config struct {
	// UndoDepth is the maximum number of undo groups retained.
	UndoDepth int `toml:"undo_depth"`

	// ScrollMarginRows keeps the cursor this many rows away from the
	// top and bottom viewport edges while scrolling.
	ScrollMarginRows int `toml:"scroll_margin_rows"`

	// ScrollMarginCols keeps the cursor this many columns away from
	// the left and right viewport edges.
	ScrollMarginCols int `toml:"scroll_margin_cols"`

	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`

	// GutterMinWidth is the minimum line-number gutter width in cells.
	GutterMinWidth int `toml:"gutter_min_width"`

	// Language selects the syntax highlighter.
	Language string `toml:"language"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UndoDepth:        1000,
		ScrollMarginRows: 2,
		ScrollMarginCols: 4,
		TabWidth:         4,
		GutterMinWidth:   2,
		Language:         "plain",
	}
}

// Load reads configuration from path, applying defaults for missing
// keys. A nonexistent file yields the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// clamp forces out-of-range values back to sane bounds.
func (c *Config) clamp() {
	if c.UndoDepth < 1 {
		c.UndoDepth = Default().UndoDepth
	}
	if c.ScrollMarginRows < 0 {
		c.ScrollMarginRows = 0
	}
	if c.ScrollMarginCols < 0 {
		c.ScrollMarginCols = 0
	}
	if c.TabWidth < 1 {
		c.TabWidth = Default().TabWidth
	}
	if c.GutterMinWidth < 1 {
		c.GutterMinWidth = Default().GutterMinWidth
	}
	if c.Language == "" {
		c.Language = Default().Language
	}
}
