package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/svgdoc"
)

// sanitizeCommand creates the sanitize command.
func (c *CLI) sanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <file.svg>...",
		Short: "Remove duplicate namespace declarations from SVG files",
		Long: `Rewrite SVG files in place so their root element declares the SVG
namespace at most once. Files that are already clean, unreadable or not
SVG are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := newPrinter(cmd)
			fixed := 0
			for _, path := range args {
				if svgdoc.SanitizeFile(path) {
					fixed++
					logger.Debug("Sanitized", "file", path)
					out.file(path)
				}
			}
			out.success("Sanitized %s of %s", StyleNumber.Render(fmt.Sprint(fixed)), pluralize(len(args), "file"))
			return nil
		},
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
