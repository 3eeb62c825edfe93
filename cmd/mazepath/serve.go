package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/server"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		addr     string
		maxCells int
		maxDelay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := g.logger(cmd)
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)
			srv := server.New(server.Config{Logger: log, MaxCells: maxCells, MaxDelay: maxDelay})
			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				log.Info("listening", "addr", addr)
				if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			})

			return eg.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&maxCells, "max-cells", server.DefaultMaxCells, "largest accepted grid, in cells")
	cmd.Flags().DurationVar(&maxDelay, "max-delay", server.DefaultMaxDelay, "largest accepted per-step delay")

	return cmd
}
