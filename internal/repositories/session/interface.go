package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/feastfinder/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/feastfinder/internal/models"
)

// Repository owns the live sessions. Every method works on one session at a
// time; implementations serialise writes per session code and return copies.
type Repository interface {
	// CreateSession stores a new session, failing with ErrSessionExists if the code is live
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// GetSession returns a snapshot of a live session
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// UpdateSession applies a read-modify-write to one session atomically
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)

	// SweepExpired removes sessions idle for longer than the store TTL
	SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error)
}
