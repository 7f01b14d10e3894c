package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/common/uuid"
	"github.com/KirkDiggler/feastfinder/internal/config"
	"github.com/KirkDiggler/feastfinder/internal/handlers/discord"
	"github.com/KirkDiggler/feastfinder/internal/picker"
	sessionRepo "github.com/KirkDiggler/feastfinder/internal/repositories/session"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	"github.com/KirkDiggler/feastfinder/internal/services/messaging"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
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

	if cfg.DiscordToken == "" {
		logger.Error("DISCORD_TOKEN environment variable is required")
		os.Exit(1)
	}

	systemClock := clock.New()

	// Sessions started in Discord are shared with the HTTP server when both use Redis
	var repo sessionRepo.Repository
	if cfg.Store == config.StoreRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		repo, err = sessionRepo.NewRedis(&sessionRepo.Config{
			RedisClient: redisClient,
			TTL:         cfg.SessionTTL,
		})
	} else {
		repo, err = sessionRepo.NewMemory(&sessionRepo.MemoryConfig{
			TTL:   cfg.SessionTTL,
			Clock: systemClock,
		})
	}
	if err != nil {
		logger.Error("failed to create session repository", "store", cfg.Store, "error", err)
		os.Exit(1)
	}

	p := picker.New(&picker.Config{})

	sessions, err := sessionService.New(&sessionService.Config{
		Repository:         repo,
		Clock:              systemClock,
		Logger:             logger,
		CodeGenerator:      p,
		CaseSensitiveCodes: cfg.CaseSensitiveCodes,
		JoinOnVote:         cfg.JoinOnVote,
	})
	if err != nil {
		logger.Error("failed to create session service", "error", err)
		os.Exit(1)
	}

	provider, err := candidates.NewCatalog(&candidates.Config{
		Picker:       p,
		DefaultLimit: cfg.CandidateLimit,
	})
	if err != nil {
		logger.Error("failed to create candidate provider", "error", err)
		os.Exit(1)
	}

	messages, err := messaging.NewService(&messaging.Config{Picker: p})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(&discord.Config{
		Token:          cfg.DiscordToken,
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		SessionService: sessions,
		Candidates:     provider,
		Messaging:      messages,
		Clock:          systemClock,
		UUID:           uuid.New(),
		Logger:         logger,
		CandidateLimit: cfg.CandidateLimit,
	})
	if err != nil {
		logger.Error("failed to create Discord bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		logger.Error("failed to start Discord bot", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "error", err)
	}

	logger.Info("bot has been shut down")
}
