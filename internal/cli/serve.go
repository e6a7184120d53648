package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazesearch/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the solve API over HTTP.

Runs are kept in the store named in the [server] section of the config file
(memory, file or mongo) and results are cached with the [cache] backend.
The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer st.Close()

	cfg := c.Config.Server
	c.Logger.Info("starting server",
		"store", cfg.Store,
		"cache", c.Config.Cache.Backend,
		"timeout", cfg.RequestTimeout.Duration)

	srv := server.New(runner, st, c.Logger, server.Config{
		Addr:           cfg.Addr,
		RequestTimeout: cfg.RequestTimeout.Duration,
	})
	return srv.ListenAndServe(ctx)
}
