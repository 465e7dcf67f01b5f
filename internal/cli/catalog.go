package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/catalog"
)

// catalogCommand creates the catalog command for browsing the radicals table.
func (c *CLI) catalogCommand() *cobra.Command {
	var paths pathFlags

	cmd := &cobra.Command{
		Use:   "catalog [term]",
		Short: "List or search the radicals table",
		Long: `List the radicals table, or the entries matching a term. A term matches
a radical glyph, its number, its pinyin, its gloss or one of its tags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.openCatalog(paths.apply(cmd, c.config.Paths))
			if err != nil {
				return err
			}
			entries := cat.Entries()
			if len(args) == 1 {
				entries = cat.Search(args[0])
			}
			if len(entries) == 0 {
				newPrinter(cmd).info("No radicals found")
				return nil
			}
			writeRadicals(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	paths.register(cmd)
	return cmd
}

func writeRadicals(w io.Writer, entries []catalog.Radical) {
	for _, r := range entries {
		fmt.Fprintf(w, "%s %s  %-8s %s",
			StyleNumber.Render(catalog.FileName(r.Num)[:3]), StyleHighlight.Render(r.ID),
			r.Pinyin, StyleValue.Render(r.Gloss))
		if len(r.Tags) > 0 {
			fmt.Fprint(w, StyleDim.Render("  "+strings.Join(r.Tags, ", ")))
		}
		fmt.Fprintln(w)
	}
}
