package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/config"
	"github.com/matzehuels/glyphsmith/pkg/layout"
)

// layoutFlags are the layout overrides shared by commands that compose.
// Values only replace the configured layout when set explicitly.
type layoutFlags struct {
	size        float64
	gutter      float64
	leftWidth   float64
	height      float64
	outerMargin float64
	inset       float64
	topHeight   float64
	align       string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	d := layout.DriverConfig()
	fs := cmd.Flags()
	fs.Float64Var(&f.size, "size", d.Size, "canvas size")
	fs.Float64Var(&f.gutter, "gutter", d.GutterRatio, "gap between slots, as a fraction of the size")
	fs.Float64Var(&f.leftWidth, "left-width", d.LeftWidthRatio, "left slot share of the inner width (side-by-side)")
	fs.Float64Var(&f.height, "height", d.HeightRatio, "slot height as a fraction of the size (side-by-side)")
	fs.Float64Var(&f.outerMargin, "outer-margin", d.OuterMarginRatio, "left and right margin (side-by-side)")
	fs.Float64Var(&f.inset, "inset", d.SlotInsetRatio, "horizontal inset inside each slot (side-by-side)")
	fs.Float64Var(&f.topHeight, "top-height", d.TopHeightRatio, "top slot share of the usable height (stacked)")
	fs.StringVar(&f.align, "align", string(d.Align), "vertical alignment: center, baseline (side-by-side)")
}

// apply returns cfg with every explicitly set flag applied.
func (f *layoutFlags) apply(cmd *cobra.Command, cfg layout.Config) layout.Config {
	changed := cmd.Flags().Changed
	if changed("size") {
		cfg.Size = f.size
	}
	if changed("gutter") {
		cfg.GutterRatio = f.gutter
	}
	if changed("left-width") {
		cfg.LeftWidthRatio = f.leftWidth
	}
	if changed("height") {
		cfg.HeightRatio = f.height
	}
	if changed("outer-margin") {
		cfg.OuterMarginRatio = f.outerMargin
	}
	if changed("inset") {
		cfg.SlotInsetRatio = f.inset
	}
	if changed("top-height") {
		cfg.TopHeightRatio = f.topHeight
	}
	if changed("align") {
		cfg.Align = layout.Align(f.align)
	}
	return cfg.Normalize()
}

// pathFlags override the configured component locations.
type pathFlags struct {
	components string
	catalog    string
}

func (f *pathFlags) register(cmd *cobra.Command) {
	d := config.Default().Paths
	cmd.Flags().StringVar(&f.components, "components", d.Components, "directory of numbered radical SVGs")
	cmd.Flags().StringVar(&f.catalog, "catalog", d.Catalog, "radicals table (JSON); empty for numeric ids only")
}

func (f *pathFlags) apply(cmd *cobra.Command, p config.Paths) config.Paths {
	if cmd.Flags().Changed("components") {
		p.Components = f.components
	}
	if cmd.Flags().Changed("catalog") {
		p.Catalog = f.catalog
	}
	return p
}
