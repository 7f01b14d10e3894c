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

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/common/uuid"
	"github.com/KirkDiggler/feastfinder/internal/config"
	"github.com/KirkDiggler/feastfinder/internal/handlers/api"
	"github.com/KirkDiggler/feastfinder/internal/janitor"
	"github.com/KirkDiggler/feastfinder/internal/metrics"
	"github.com/KirkDiggler/feastfinder/internal/picker"
	sessionRepo "github.com/KirkDiggler/feastfinder/internal/repositories/session"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	systemClock := clock.New()

	repo, closeRepo, err := openRepository(cfg, systemClock)
	if err != nil {
		return err
	}
	defer closeRepo()

	collectors := metrics.New(prometheus.DefaultRegisterer)
	p := picker.New(&picker.Config{})

	sessions, err := sessionService.New(&sessionService.Config{
		Repository:         repo,
		Clock:              systemClock,
		Logger:             logger,
		Metrics:            collectors,
		CodeGenerator:      p,
		CaseSensitiveCodes: cfg.CaseSensitiveCodes,
		JoinOnVote:         cfg.JoinOnVote,
	})
	if err != nil {
		return err
	}

	provider, err := candidates.NewCatalog(&candidates.Config{
		Picker:       p,
		DefaultLimit: cfg.CandidateLimit,
	})
	if err != nil {
		return err
	}

	sweeper, err := janitor.New(&janitor.Config{
		Evictor:  sessions,
		Interval: cfg.SweepInterval,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router, err := api.NewRouter(&api.Config{
		SessionService: sessions,
		Candidates:     provider,
		Metrics:        collectors,
		Gatherer:       prometheus.DefaultGatherer,
		UUID:           uuid.New(),
		Logger:         logger,
		CandidateLimit: cfg.CandidateLimit,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper.Start(ctx)
	defer sweeper.Stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "store", cfg.Store)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// openRepository returns the session store selected by STORE and a func that releases it
func openRepository(cfg *config.Config, c clock.Clock) (sessionRepo.Repository, func(), error) {
	if cfg.Store == config.StoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
			RedisClient: client,
			TTL:         cfg.SessionTTL,
		})
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return repo, func() { client.Close() }, nil
	}

	repo, err := sessionRepo.NewMemory(&sessionRepo.MemoryConfig{
		TTL:   cfg.SessionTTL,
		Clock: c,
	})
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}
