package session

import (
	"time"

	"github.com/KirkDiggler/feastfinder/internal/models"
)

type CreateSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	Code string
}

// UpdateFunc mutates a private copy of the session. Returning an error
// discards the copy and leaves the stored session untouched.
type UpdateFunc func(session *models.Session) error

type UpdateSessionInput struct {
	Code   string
	Update UpdateFunc
}

type SweepExpiredInput struct {
	// Now is the reference time for idle expiry
	Now time.Time
}

type SweepExpiredOutput struct {
	Removed int
}
