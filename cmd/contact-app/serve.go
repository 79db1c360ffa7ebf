package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/joestump/contact-app/internal/config"
	"github.com/joestump/contact-app/internal/contacts"
	"github.com/joestump/contact-app/internal/handler"
	"github.com/joestump/contact-app/internal/logger"
	"github.com/joestump/contact-app/internal/metrics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(&logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Format: cfg.Log.Format})

			s, database, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := contacts.NewService(s)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Metrics.Refresh != "" {
				c, err := startGaugeRefresh(ctx, cfg.Metrics.Refresh, svc, log)
				if err != nil {
					return err
				}
				defer c.Stop()
			}

			deps := handler.Deps{
				Contacts: svc,
				PageSize: cfg.API.PageSize,
				Logger:   log,
			}
			if database != nil {
				deps.DB = database
			}

			srv := &http.Server{
				Addr:    cfg.HTTP.Addr,
				Handler: handler.NewRouter(deps),
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", "addr", cfg.HTTP.Addr, "driver", cfg.DB.Driver)
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

			log.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}

// startGaugeRefresh recomputes the contacts_total gauge on the given cron
// schedule, once immediately and then on every tick.
func startGaugeRefresh(ctx context.Context, spec string, svc *contacts.Service, log *slog.Logger) (*cron.Cron, error) {
	refresh := func() {
		n, err := svc.Count(ctx)
		if err != nil {
			log.Warn("refresh contacts gauge", "error", err)
			return
		}
		metrics.ContactsTotal.Set(float64(n))
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, refresh); err != nil {
		return nil, fmt.Errorf("metrics.refresh %q: %w", spec, err)
	}
	refresh()
	c.Start()
	return c, nil
}
