package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ipa-transcriber/internal/adapter/postgres"
	"github.com/heartmarshall/ipa-transcriber/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/ipa-transcriber/internal/adapter/provider/freedict"
	"github.com/heartmarshall/ipa-transcriber/internal/config"
	"github.com/heartmarshall/ipa-transcriber/internal/service/transcription"
	"github.com/heartmarshall/ipa-transcriber/internal/transport/middleware"
	"github.com/heartmarshall/ipa-transcriber/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires the transcription service and the
// HTTP transport, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	lexRepo := lexicon.New(pool)

	svc := transcription.NewService(logger, lexRepo, nil)
	if cfg.Fallback.Enabled {
		fallback := freedict.NewProviderWithURL(cfg.Fallback.BaseURL, logger)
		svc = transcription.NewService(logger, lexRepo, fallback)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(
		logger,
		cfg,
		rest.NewTranscribeHandler(svc, cfg.Transcription, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		limiter,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
