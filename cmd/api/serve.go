package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vahis-pet-care-hub/internal/adapters/storage/postgres"
	"vahis-pet-care-hub/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta la API HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	var db *sql.DB
	if cfg.DB.DSN != "" {
		d, err := postgres.Open(ctx, cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer d.Close()
		db = d
		log.Info("using postgres storage", nil)
	} else {
		log.Info("DB_DSN not set, using in-memory storage", nil)
	}

	o, err := newOracle(ctx)
	if err != nil {
		return err
	}

	h, err := router.NewRouter(router.Options{
		DB:     db,
		Oracle: o,
		Logger: log,
		Match: router.MatchOptions{
			OracleTimeout: cfg.Match.OracleTimeout,
			RatePerMinute: cfg.Match.RatePerMinute,
			RateBurst:     cfg.Match.RateBurst,
		},
		Auth: router.AuthOptions{
			SessionTTL:    cfg.Auth.SessionTTL,
			SecureCookie:  cfg.Auth.SecureCookie,
			AdminUsername: cfg.Auth.AdminUsername,
			AdminPassword: cfg.Auth.AdminPassword,
		},
		SeedCatalog: cfg.Catalog.Seed,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
