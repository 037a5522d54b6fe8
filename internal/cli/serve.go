package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fengshui/internal/server"
)

// serveCommand creates the serve command, which runs the browser front end.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout toy to a browser",
		Long: `Serve the layout toy to a browser.

Every page load gets its own board. Boards live in memory and are dropped
after the configured session_ttl of inactivity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			printInfo("Serving on %s", StyleValue.Render(displayURL(cfg.Server.Addr)))
			printDetail("Press Ctrl+C to stop")
			return server.New(cfg, nil, c.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// displayURL turns a listen address into a clickable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
