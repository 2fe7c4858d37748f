package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		chain   chainFlags
		addr    string
		timeout time.Duration
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated names over HTTP",
		Long: `Starts an HTTP server with:
  GET /names?count=N   up to 100 names as {"data":{"names":[...]}}
  GET /healthz         liveness
  GET /readyz          readiness

Set NAMEGEN_RATE_CAPACITY to limit names per client; each name costs one token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := chain.load(cmd, g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				s.HTTP.Addr = addr
			}
			log, err := g.logger(cmd, s)
			if err != nil {
				return err
			}

			gen, err := buildNamer(s, log)
			if err != nil {
				return err
			}
			svc := newService(gen, timeout, log)
			if s.RateLimit.Enabled() {
				lim, err := ratelimiter.New(s.RateLimit)
				if err != nil {
					return err
				}
				defer lim.Close()
				svc.withLimiter(lim, s.TrustProxy)
			}

			ctx := cmd.Context()
			if watch {
				err := watchCorpus(ctx, s.Corpus, log, func() {
					next, err := buildNamer(s, log)
					if err != nil {
						log.ErrorContext(ctx, "corpus reload failed, keeping previous generator", logger.Error(err))
						return
					}
					svc.swap(next)
					log.InfoContext(ctx, "corpus reloaded")
				})
				if err != nil {
					return err
				}
			}

			srv := httpserver.NewFromConfig(s.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, svc.routes())
		},
	}
	chain.register(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides NAMEGEN_HTTP_ADDR)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Second, "Per-request generation timeout")
	cmd.Flags().BoolVar(&watch, "watch", false, "Retrain when corpus files change")
	return cmd
}
