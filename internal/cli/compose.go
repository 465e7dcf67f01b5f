package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/compose"
	"github.com/matzehuels/glyphsmith/pkg/config"
	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/render"
)

// composeOpts holds the command-line flags for the compose command.
type composeOpts struct {
	layout  string   // outer arrangement: side-by-side (lr) or stacked (tb)
	name    string   // word the glyph is made for; seeds the output name
	output  string   // store target; overrides the configured one
	formats []string // extra export formats: png, pdf
	scale   float64  // PNG scale factor
	paths   pathFlags
	layoutF layoutFlags
}

// composeCommand creates the compose command.
func (c *CLI) composeCommand() *cobra.Command {
	var formatsStr string
	opts := composeOpts{layout: layout.SideBySide.Tag(), scale: 1}

	cmd := &cobra.Command{
		Use:   "compose <component> <component> [component]",
		Short: "Compose two or three radicals into a new glyph",
		Long: `Compose two or three radicals into a new glyph.

Components are radical glyphs (心), zero-padded numbers (061) or numbers (61).
With three components the last two are first combined in the other
arrangement, so "compose -l lr 人 木 心" builds ⿰(人, ⿱(木, 心)).

The glyph is written to the output store as <name>_<layout>_<timestamp>.svg.`,
		Args: cobra.RangeArgs(1, compose.MaxComponents+1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runCompose(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "arrangement: lr/side-by-side (⿰), tb/stacked (⿱)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "word the glyph is made for (default: generated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory or store target (default: from config)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "additional export format(s): png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	opts.paths.register(cmd)
	opts.layoutF.register(cmd)

	return cmd
}

// parseFormats parses the --format flag into a slice of export formats.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (c *CLI) runCompose(cmd *cobra.Command, ids []string, opts composeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	kind, err := layout.ParseKind(opts.layout)
	if err != nil {
		return err
	}
	formats, err := validateFormats(opts.formats)
	if err != nil {
		return err
	}

	storeCfg := c.config.Store
	if opts.output != "" {
		storeCfg.Target = opts.output
	}
	cat, err := c.openCatalog(opts.paths.apply(cmd, c.config.Paths))
	if err != nil {
		return err
	}
	st, err := c.openStore(ctx, storeCfg)
	if err != nil {
		return err
	}
	defer st.Close()

	engine := c.newEngine(cat, st, opts.layoutF.apply(cmd, c.config.Layout))
	start := time.Now()
	res, err := engine.Compose(ctx, compose.Request{Components: ids, Layout: kind, Name: opts.name})
	if err != nil {
		return err
	}
	logElapsed(logger, start, "Composed", "name", res.Name, "layout", kind)

	out := newPrinter(cmd)
	out.success("Composed %s %s", StyleHighlight.Render(kind.Symbol()), StyleValue.Render(strings.Join(res.Used, " ")))
	out.file(describeTarget(storeCfg, res.Name))
	if res.Degraded {
		out.warning("Could not nest %s; the glyph uses the first two components", ids[2])
	}

	for _, f := range formats {
		name, err := exportGlyph(ctx, st, res, f, opts.scale)
		if err != nil {
			return err
		}
		out.file(describeTarget(storeCfg, name))
	}
	return nil
}

// validateFormats checks and parses the export formats. SVG is always
// written and is dropped from the list.
func validateFormats(formats []string) ([]render.Format, error) {
	var out []render.Format
	for _, s := range formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if f != render.FormatSVG {
			out = append(out, f)
		}
	}
	return out, nil
}

// putter is the part of a store exports need.
type putter interface {
	Put(ctx context.Context, name string, data []byte) error
}

// exportGlyph converts the composed glyph and stores it next to the SVG.
func exportGlyph(ctx context.Context, st putter, res *compose.Result, f render.Format, scale float64) (string, error) {
	data, err := render.Convert(ctx, res.SVG, f, scale)
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(res.Name, ".svg") + f.Ext()
	if err := st.Put(ctx, name, data); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "export %s", name)
	}
	return name, nil
}

// describeTarget renders where a stored resource ended up.
func describeTarget(s config.Store, name string) string {
	if strings.Contains(s.Target, "://") || s.Target == "memory:" {
		return name + StyleDim.Render(" in "+redactTarget(s.Target))
	}
	return strings.TrimSuffix(s.Target, "/") + "/" + name
}

// redactTarget hides credentials in a store URL.
func redactTarget(target string) string {
	scheme, rest, ok := strings.Cut(target, "://")
	if !ok {
		return target
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}
	return scheme + "://" + rest
}
