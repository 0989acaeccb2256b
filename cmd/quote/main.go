package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paint-quote/internal/cache"
	"paint-quote/internal/config"
	"paint-quote/internal/service/estimate"
	"paint-quote/internal/service/export"
	"paint-quote/internal/service/quote"
	"paint-quote/internal/storage/mysql"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, "errors.log")

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = storage.Migrate(migrateCtx)
	cancel()
	if err != nil {
		log.Error("failed to migrate db", slog.String("error", err.Error()))
		os.Exit(1)
	}

	memo := cache.New(cfg.Estimate.CacheTTL, cfg.Estimate.CacheCleanup)
	engine := estimate.New(memo)

	quoteService := quote.NewQuoteService(storage, engine, quote.DefaultsFromConfig(cfg.Estimate))
	exportService := export.NewExportService(quoteService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, quoteService, exportService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to stop server", slog.String("error", err.Error()))
		}
	}()

	log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed start server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped")
}
