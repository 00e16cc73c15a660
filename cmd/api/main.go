package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "github.com/Pleijten-dev/GroosHub-sub002/internal/http"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/http/router"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/locations"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/scoring"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/cache"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store := initCache(ctx, cfg, log)

	// Scoring overrides are resolved once here and injected into the
	// statistics module; nothing reloads them at request time.
	overrides := scoring.LoadOverrides(cfg.ScoringConfigPath, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	statisticsModule := statistics.NewModule(cfg, store, overrides, log)
	locationsModule := locations.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			statisticsModule,
			locationsModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initCache connects Redis when configured, falling back to the in-process
// cache so the service also runs without any infrastructure.
func initCache(ctx context.Context, cfg *config.Config, log *logger.Logger) cache.Store {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_ADDR not configured; using in-process cache")
		return cache.NewMemory()
	}

	var store *cache.Redis
	err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		r, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		store = r
		return nil
	})
	if err != nil {
		log.Error("redis unreachable, falling back to in-process cache", "error", err)
		return cache.NewMemory()
	}

	log.Info("redis connection established", "addr", cfg.RedisAddr)
	return store
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
