package main

import (
	"co2-pax-compare/internal/api"
	"co2-pax-compare/internal/config"
	"co2-pax-compare/internal/platform/obs"
	"co2-pax-compare/internal/render"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(cfg *config.Config, flags *flagOverrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the comparison once and serve the chart over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.port, "port", "p", "", "Listen port (default from PORT or 8080)")

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx = obs.WithRunID(ctx)

	// Fail fast on a bad default format before doing any loading.
	if _, err := render.New(cfg.OutputFormat); err != nil {
		return err
	}

	pipeline, cleanup, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	table, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.RouterConfig{
		Table:         table,
		RunID:         obs.RunID(ctx),
		NewRenderer:   render.New,
		DefaultFormat: cfg.OutputFormat,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Printf("Server listening addr=:%s run_id=%s rows=%d", cfg.Port, obs.RunID(ctx), len(table))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egctx.Done()
		log.Println("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
