package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphsmith/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		paths pathFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compose API over HTTP",
		Long: `Serve the compose API over HTTP.

Endpoints:
  GET  /healthz        liveness and version
  POST /compose        {"components": ["人", "木"], "layout": "lr", "name": "rest"}
  GET  /gen/{name}     a stored glyph (?format=png|pdf to convert)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("addr") {
				c.config.Server.Addr = addr
			}

			cat, err := c.openCatalog(paths.apply(cmd, c.config.Paths))
			if err != nil {
				return err
			}
			st, err := c.openStore(ctx, c.config.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := server.New(c.newEngine(cat, st, c.config.Layout), st, server.WithLogger(c.Logger))
			newPrinter(cmd).info("Listening on %s", StyleLink.Render("http://"+displayAddr(c.config.Server.Addr)))
			return srv.ListenAndServe(ctx, c.config.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config, :8080)")
	paths.register(cmd)
	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
