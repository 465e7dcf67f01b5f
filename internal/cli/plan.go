package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/svgdoc"
)

// planCommand creates the plan command, which prints the slot geometry
// of a layout without composing anything.
func (c *CLI) planCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "plan [lr|tb]",
		Short: "Show the slot geometry of a layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []layout.Kind{layout.SideBySide, layout.Stacked}
			if len(args) == 1 {
				k, err := layout.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []layout.Kind{k}
			}
			cfg := flags.apply(cmd, c.config.Layout)
			for i, k := range kinds {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				writePlan(cmd.OutOrStdout(), layout.Plan(k, cfg))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func writePlan(w io.Writer, l layout.Layout) {
	n := svgdoc.FormatNumber
	fmt.Fprintf(w, "%s %s  size %s  gutter %s  margin %s\n",
		StyleTitle.Render(l.Kind.Symbol()), StyleHighlight.Render(l.Kind.String()),
		n(l.Size()), n(l.Gutter), n(l.OuterMargin))
	for i, s := range l.Slots {
		name := [...]string{"first", "second"}[i]
		fmt.Fprintf(w, "  %-6s x=%s y=%s w=%s h=%s", name, n(s.X), n(s.Y), n(s.W), n(s.H))
		if s.Inset > 0 {
			in := s.Inner()
			fmt.Fprintf(w, "  inner x=%s w=%s", n(in.X), n(in.W))
		}
		fmt.Fprintln(w)
	}
}
