// Package cli implements the glyphsmith command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/buildinfo"
	"github.com/matzehuels/glyphsmith/pkg/catalog"
	"github.com/matzehuels/glyphsmith/pkg/compose"
	"github.com/matzehuels/glyphsmith/pkg/config"
	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "glyphsmith"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Getenv reads environment overrides. Defaults to os.Getenv.
	Getenv func(string) string

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Getenv: os.Getenv,
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Glyphsmith composes new glyphs from radical drawings",
		Long: `Glyphsmith composes two or three radical SVG drawings into a single new glyph,
arranged side-by-side (⿰) or stacked (⿱), the way ideographs are built.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: ./glyphsmith.toml or ./glyphsmith.yaml if present)")

	// Register all subcommands
	root.AddCommand(c.composeCommand())
	root.AddCommand(c.sanitizeCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads --config, or the optional config file in the working
// directory, and applies environment overrides.
func (c *CLI) loadConfig() error {
	var (
		cfg  config.Config
		used string
		err  error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
		used = c.configPath
	} else {
		cfg, used, err = config.LoadOptional(".")
	}
	if err != nil {
		return err
	}
	if used != "" {
		c.Logger.Debug("Loaded config", "file", used)
	}

	cfg.ApplyEnv(c.Getenv)
	c.config = cfg
	return nil
}

// =============================================================================
// Engine Factory
// =============================================================================

// openCatalog builds the component resolver. A missing radicals table is
// only an error if it was configured explicitly; otherwise numeric ids
// still resolve against the component directory.
func (c *CLI) openCatalog(paths config.Paths) (*catalog.Catalog, error) {
	if paths.Catalog == "" {
		return catalog.New(paths.Components, nil)
	}
	cat, err := catalog.LoadFile(paths.Catalog, paths.Components)
	if err == nil {
		c.Logger.Debug("Loaded radicals table", "file", paths.Catalog, "radicals", cat.Len())
		return cat, nil
	}
	if paths.Catalog == config.Default().Paths.Catalog && isNotExist(paths.Catalog) {
		c.Logger.Debug("No radicals table, numeric ids only", "dir", paths.Components)
		return catalog.New(paths.Components, nil)
	}
	return nil, err
}

// openStore opens the configured output store.
func (c *CLI) openStore(ctx context.Context, s config.Store) (store.Store, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, s.Target, opts)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("Opened store", "target", s.Target)
	return st, nil
}

// newEngine creates a composition engine for CLI use.
func (c *CLI) newEngine(cat *catalog.Catalog, st store.Store, cfg layout.Config) *compose.Engine {
	return compose.New(cat, st,
		compose.WithConfig(cfg),
		compose.WithLogger(c.Logger),
	)
}

func isNotExist(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
