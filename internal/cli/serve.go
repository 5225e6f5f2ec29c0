package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/internal/server"
	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/observability"
)

// serveCommand creates the serve command: the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &mazeOpts{}
	var (
		addr         string
		cacheEntries int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over HTTP",
		Long: `Start the HTTP API.

Endpoints:
  GET /healthz            build information
  GET /v1/maze            a rendered maze; query rows, columns, seed, mode,
                          format (svg, json, txt, dot, png, pdf), size, visualize
  GET /v1/maze/compare    BFS and DFS visit counts for one maze

The flags set the defaults for requests that omit a parameter.`,
		Example: `  mazewalk serve --addr :9090 --rows 20 --columns 20
  curl 'localhost:9090/v1/maze?format=txt&seed=1234'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, cfg, err := c.options(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			var store cache.Cache
			if cacheEntries > 0 {
				store = cache.NewMemoryCache(cacheEntries)
				defer store.Close()
			}

			observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
			srv := server.New(c.newRunner(), c.Logger, server.Config{
				Addr:     cfg.Server.Addr,
				Defaults: popts,
				Cache:    store,
			})
			err = srv.ListenAndServe(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	opts.addDimensionFlags(cmd.Flags())
	opts.addSearchFlags(cmd.Flags(), "default search mode: bfs or dfs")
	cmd.Flags().IntVar(&opts.size, "size", 0, "default SVG canvas size in pixels")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().IntVar(&cacheEntries, "cache-entries", cache.DefaultMaxEntries, "renderings of seeded mazes kept in memory (0 disables)")

	return cmd
}
