package layout

import (
	"math"
	"strings"
)

// Align selects the vertical placement of side-by-side content.
type Align string

const (
	// AlignCenter centers content in the shared height band.
	AlignCenter Align = "center"
	// AlignBaseline puts the bottom of the content on the canvas bottom.
	AlignBaseline Align = "baseline"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultSize             = 1024.0
	DefaultGutterRatio      = 0.02
	DefaultLeftWidthRatio   = 0.35
	DefaultHeightRatio      = 0.82
	DefaultOuterMarginRatio = 0.1
	DefaultSlotInsetRatio   = 0.06
	DefaultTopHeightRatio   = 0.33
	DefaultAlign            = AlignCenter
)

// Clamp bounds for the configurable ratios.
const (
	minLeftWidthRatio   = 0.05
	maxLeftWidthRatio   = 0.9
	maxOuterMarginRatio = 0.2
	maxSlotInsetRatio   = 0.4
	maxGutterRatio      = 0.5
	minTopHeightRatio   = 0.05
	maxTopHeightRatio   = 0.95
)

// Config holds the layout parameters shared by both kinds.
// Ratios are fractions of the canvas size unless noted otherwise.
type Config struct {
	// Size is the side of the square output canvas.
	Size float64 `json:"size" toml:"size" yaml:"size"`

	// GutterRatio is the space between the two slots.
	GutterRatio float64 `json:"gutter_ratio" toml:"gutter_ratio" yaml:"gutter_ratio"`

	// LeftWidthRatio is the left slot's share of the inner width (side-by-side).
	LeftWidthRatio float64 `json:"left_width_ratio" toml:"left_width_ratio" yaml:"left_width_ratio"`

	// HeightRatio is the fraction of the canvas height both slots use (side-by-side).
	HeightRatio float64 `json:"height_ratio" toml:"height_ratio" yaml:"height_ratio"`

	// OuterMarginRatio is the margin kept on the far left and right (side-by-side).
	OuterMarginRatio float64 `json:"outer_margin_ratio" toml:"outer_margin_ratio" yaml:"outer_margin_ratio"`

	// SlotInsetRatio shrinks each slot horizontally on both sides (side-by-side).
	SlotInsetRatio float64 `json:"slot_inset_ratio" toml:"slot_inset_ratio" yaml:"slot_inset_ratio"`

	// Align is the vertical placement of side-by-side content.
	Align Align `json:"align" toml:"align" yaml:"align"`

	// TopHeightRatio is the top slot's share of the usable height (stacked).
	TopHeightRatio float64 `json:"top_height_ratio" toml:"top_height_ratio" yaml:"top_height_ratio"`
}

// Default returns the default layout configuration.
func Default() Config {
	return Config{
		Size:             DefaultSize,
		GutterRatio:      DefaultGutterRatio,
		LeftWidthRatio:   DefaultLeftWidthRatio,
		HeightRatio:      DefaultHeightRatio,
		OuterMarginRatio: DefaultOuterMarginRatio,
		SlotInsetRatio:   DefaultSlotInsetRatio,
		Align:            DefaultAlign,
		TopHeightRatio:   DefaultTopHeightRatio,
	}
}

// DriverConfig returns the configuration the composition engine uses by
// default: the standard layout without a gutter between slots.
func DriverConfig() Config {
	c := Default()
	c.GutterRatio = 0
	return c
}

// Normalize returns a copy of c with every field brought into range.
// Non-finite or non-positive sizes and ratios that have no meaningful
// clamp fall back to their defaults.
func (c Config) Normalize() Config {
	if !finite(c.Size) || c.Size <= 0 {
		c.Size = DefaultSize
	}
	c.GutterRatio = clamp(c.GutterRatio, 0, maxGutterRatio, DefaultGutterRatio)
	c.LeftWidthRatio = clamp(c.LeftWidthRatio, minLeftWidthRatio, maxLeftWidthRatio, DefaultLeftWidthRatio)
	c.OuterMarginRatio = clamp(c.OuterMarginRatio, 0, maxOuterMarginRatio, DefaultOuterMarginRatio)
	c.SlotInsetRatio = clamp(c.SlotInsetRatio, 0, maxSlotInsetRatio, DefaultSlotInsetRatio)
	c.TopHeightRatio = clamp(c.TopHeightRatio, minTopHeightRatio, maxTopHeightRatio, DefaultTopHeightRatio)
	if !finite(c.HeightRatio) || c.HeightRatio <= 0 || c.HeightRatio > 1 {
		c.HeightRatio = DefaultHeightRatio
	}
	switch Align(strings.ToLower(string(c.Align))) {
	case AlignBaseline:
		c.Align = AlignBaseline
	default:
		c.Align = AlignCenter
	}
	return c
}

func clamp(v, lo, hi, fallback float64) float64 {
	if !finite(v) {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
