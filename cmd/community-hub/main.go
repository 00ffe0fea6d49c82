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

	"communityHub/internal/activity"
	"communityHub/internal/analytics"
	"communityHub/internal/config"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/http-server/router"
	"communityHub/internal/lib/logger/handlers/slogpretty"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/services/marketplace"
	"communityHub/internal/services/registration"
	"communityHub/internal/storage"
	"communityHub/internal/storage/memory"
	"communityHub/internal/storage/postgres"

	"github.com/redis/go-redis/v9"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title                       Community Hub API
// @version                     1.0
// @description                 Events with capacity and waitlist, and a marketplace of listings and buyer requests.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer JWT issued by cmd/issue-token
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting community hub", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("debug messages are enabled")

	store, closeStore, err := setupStore(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	counters, closeCounters, err := setupCounters(cfg.Redis)
	if err != nil {
		log.Error("failed to init counters", sl.Err(err))
		os.Exit(1)
	}

	bus := activity.NewBus(log)
	projector := analytics.NewProjector(counters)

	consumeCtx, stopConsuming := context.WithCancel(context.Background())

	consumed, err := bus.Consume(consumeCtx, projector.Handle)
	if err != nil {
		log.Error("failed to subscribe to activity", sl.Err(err))
		os.Exit(1)
	}

	events := registration.New(log, store, bus, projector)
	market := marketplace.New(log, store, bus, projector)
	authn := auth.New(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, authn, events, market),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("server stopped")

	stopConsuming()
	if err = bus.Close(); err != nil {
		log.Error("failed to close activity bus", sl.Err(err))
	}

	select {
	case <-consumed:
	case <-ctx.Done():
		log.Warn("activity projector did not stop in time")
	}

	if err = closeCounters(); err != nil {
		log.Error("failed to close counters", sl.Err(err))
	}

	if err = closeStore(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupStore(cfg *config.Config) (storage.Store, func() error, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), func() error { return nil }, nil
	default:
		pg, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		if err = pg.Migrate(); err != nil {
			_ = pg.Close()
			return nil, nil, err
		}

		return pg, pg.Close, nil
	}
}

// setupCounters connects to Redis when an address is configured and falls
// back to process-local counters otherwise.
func setupCounters(cfg config.Redis) (analytics.Counters, func() error, error) {
	if cfg.Address == "" {
		return analytics.NewMemoryCounters(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return analytics.NewRedisCounters(client), client.Close, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
