package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/handler"
	"storefront/service"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		if cfg.Catalog.Source == config.SourceHTTP {
			return fmt.Errorf("serve needs a file or postgres catalog, not %q", config.SourceHTTP)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		f := formatter(cfg)
		st, err := openStore(cfg, f)
		if err != nil {
			return err
		}
		defer st.Close()

		var (
			metrics        *handler.Metrics
			metricsHandler http.Handler
		)
		if cfg.Server.Metrics {
			reg := prometheus.NewRegistry()
			metrics = handler.NewMetrics(reg)
			metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		}

		h := handler.NewHandler(service.NewService(st, f), logger)
		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: handler.NewRouter(h, metrics, metricsHandler),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("catalog API listening",
				zap.String("addr", srv.Addr),
				zap.String("source", cfg.Catalog.Source))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog schema to Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		pgCfg := *cfg
		pgCfg.Catalog.Source = config.SourcePostgres
		pgCfg.Database.Migrate = true
		st, err := openStore(&pgCfg, formatter(cfg))
		if err != nil {
			return err
		}
		defer st.Close()
		logger.Info("database migrations applied")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}
