package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vibegrid/internal/config"
	"github.com/matzehuels/vibegrid/internal/metrics"
	"github.com/matzehuels/vibegrid/internal/server"
	"github.com/matzehuels/vibegrid/pkg/cache"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the layout HTTP API with Prometheus metrics on /metrics.

Configuration comes from the environment (and .env if present):

  VIBEGRID_ADDR              listen address (default :8080)
  VIBEGRID_LOG_LEVEL         debug, info, warn or error
  VIBEGRID_CACHE             none, file, redis or mongo (default file)
  VIBEGRID_CACHE_DIR         file cache directory
  VIBEGRID_CACHE_TTL         cache entry lifetime (default 24h)
  VIBEGRID_CACHE_PREFIX      key prefix for a shared redis or mongo cache
  VIBEGRID_REDIS_URL         redis://host:6379/0
  VIBEGRID_MONGO_URI         mongodb://host:27017
  VIBEGRID_MONGO_DB          database name (default vibegrid)
  VIBEGRID_MAX_BEST_COUNT    upper bound on best-of-N count
  VIBEGRID_SHUTDOWN_TIMEOUT  graceful shutdown timeout (default 10s)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if !cmd.Flags().Changed("verbose") {
				c.SetLogLevel(cfg.Level())
			}

			lc, err := cache.Open(ctx, cfg.CacheOptions())
			if err != nil {
				return err
			}
			c.Logger.Info("cache ready", "backend", cfg.Cache)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics.New(reg).Register()

			runner := pipeline.NewRunner(lc, cfg.Keyer(), c.Logger)
			runner.TTL = cfg.CacheTTL
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Options{
				Addr:            cfg.Addr,
				ShutdownTimeout: cfg.ShutdownTimeout,
				MaxBestCount:    cfg.MaxBestCount,
				Registry:        reg,
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address (overrides VIBEGRID_ADDR)")
	return cmd
}
