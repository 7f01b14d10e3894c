package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	sessionKeyPrefix = "feastfinder:session:"

	defaultMaxRetries = 10
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is applied to the session key on every write (0 = no expiry)
	TTL time.Duration

	// MaxRetries bounds optimistic-lock retries per update
	MaxRetries int
}

// redisRepository implements Repository using one JSON value per session.
// Updates WATCH the key so concurrent writers to the same session retry
// instead of overwriting each other.
type redisRepository struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		ttl:        cfg.TTL,
		maxRetries: maxRetries,
	}, nil
}

func sessionKey(code string) string {
	return sessionKeyPrefix + code
}

// CreateSession stores the session only if no live session uses the code
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilInput
	}
	if input.Session.Code == "" {
		return nil, ErrEmptyCode
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	created, err := r.client.SetNX(ctx, sessionKey(input.Session.Code), sessionJSON, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if !created {
		return nil, ErrSessionExists
	}

	return input.Session.Clone(), nil
}

// GetSession retrieves a session by code
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Code == "" {
		return nil, ErrEmptyCode
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.Code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return decodeSession(sessionJSON)
}

// UpdateSession applies input.Update inside a WATCH/MULTI transaction
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.Update == nil {
		return nil, ErrNilInput
	}
	if input.Code == "" {
		return nil, ErrEmptyCode
	}

	key := sessionKey(input.Code)

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		var updated *models.Session

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			sessionJSON, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return ErrSessionNotFound
				}
				return fmt.Errorf("failed to get session: %w", err)
			}

			session, err := decodeSession(sessionJSON)
			if err != nil {
				return err
			}

			if err := input.Update(session); err != nil {
				return err
			}

			updatedJSON, err := json.Marshal(session)
			if err != nil {
				return fmt.Errorf("failed to marshal session: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, updatedJSON, r.ttl)
				return nil
			})
			if err != nil {
				return err
			}

			updated = session
			return nil
		}, key)

		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrConflict
}

// SweepExpired is a no-op: Redis expires session keys on its own
func (r *redisRepository) SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	return &SweepExpiredOutput{}, nil
}

func decodeSession(data []byte) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if session.Votes == nil {
		session.Votes = models.NewVoteLedger()
	}
	return &session, nil
}
