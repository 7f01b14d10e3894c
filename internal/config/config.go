package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store names accepted by STORE
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds process configuration read from the environment
type Config struct {
	Port string

	// Store selects the session store: memory or redis
	Store         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SessionTTL is how long a session may sit idle before eviction
	SessionTTL time.Duration

	// SweepInterval is how often the janitor evicts idle sessions
	SweepInterval time.Duration

	CaseSensitiveCodes bool
	JoinOnVote         bool
	CandidateLimit     int

	LogLevel  string
	LogFormat string

	DiscordToken  string
	ApplicationID string
	GuildID       string
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var errs []error

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Store:              strings.ToLower(getEnv("STORE", StoreMemory)),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getInt("REDIS_DB", 0, &errs),
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour, &errs),
		SweepInterval:      getDuration("SWEEP_INTERVAL", 10*time.Minute, &errs),
		CaseSensitiveCodes: getBool("CASE_SENSITIVE_CODES", false, &errs),
		JoinOnVote:         getBool("JOIN_ON_VOTE", true, &errs),
		CandidateLimit:     getInt("CANDIDATE_LIMIT", 10, &errs),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		ApplicationID:      getEnv("APPLICATION_ID", ""),
		GuildID:            getEnv("GUILD_ID", ""),
	}

	if cfg.Store != StoreMemory && cfg.Store != StoreRedis {
		errs = append(errs, fmt.Errorf("STORE must be %q or %q, got %q", StoreMemory, StoreRedis, cfg.Store))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return parsed
}

func getBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return parsed
}

func getDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return parsed
}
