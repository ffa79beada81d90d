package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/joestump/counters/docs/swagger"
	"github.com/joestump/counters/internal/build"
	"github.com/joestump/counters/internal/db"
	"github.com/joestump/counters/internal/handler"
	"github.com/joestump/counters/internal/metrics"
	"github.com/joestump/counters/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()
			cfg := e.cfg

			// The schema must be current before the first request is served.
			if err := db.Migrate(e.db, cfg.DB.Driver); err != nil {
				return err
			}

			counterStore := store.NewCounterStore(e.db)
			if err := metrics.RegisterRowsGauge(prometheus.DefaultRegisterer, counterStore.Count, cfg.DB.QueryTimeout); err != nil {
				return fmt.Errorf("register rows gauge: %w", err)
			}

			if err := describeServer(cfg.Docs.ServerURL); err != nil {
				return err
			}

			router := handler.NewRouter(handler.Deps{
				Logger:       e.logger,
				Counters:     counterStore,
				DB:           counterStore,
				QueryTimeout: cfg.DB.QueryTimeout,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       cfg.HTTP.ReadTimeout,
				WriteTimeout:      cfg.HTTP.WriteTimeout,
				IdleTimeout:       2 * time.Minute,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				e.logger.Info().Str("addr", cfg.HTTP.Addr).Str("version", build.Version).Msg("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			e.logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}

// describeServer points the published API document at serverURL and stamps
// it with the build version.
func describeServer(serverURL string) error {
	if build.Version != "dev" {
		swagger.SwaggerInfo.Version = build.Version
	}
	if serverURL == "" {
		return nil
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid COUNTERS_DOCS_SERVER_URL: %w", err)
	}
	swagger.SwaggerInfo.Host = u.Host
	if u.Scheme != "" {
		swagger.SwaggerInfo.Schemes = []string{u.Scheme}
	}
	return nil
}
