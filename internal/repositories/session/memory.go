package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/models"
)

// MemoryConfig holds configuration for the in-process session store
type MemoryConfig struct {
	// TTL is how long a session may sit idle before it expires (0 = never)
	TTL time.Duration

	// Clock decides expiry on reads; defaults to the system clock
	Clock clock.Clock
}

// entry guards one session. removed is set when the entry leaves the map so a
// writer that fetched it just before a sweep does not resurrect it.
type entry struct {
	mu      sync.Mutex
	session *models.Session
	removed bool
}

// memoryRepository implements Repository with a map of per-session locks.
// The map lock is held only to find or swap entries, never while mutating one.
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	clock   clock.Clock
}

// NewMemory creates an empty in-memory session store
func NewMemory(cfg *MemoryConfig) (*memoryRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &memoryRepository{
		entries: make(map[string]*entry),
		ttl:     cfg.TTL,
		clock:   clk,
	}, nil
}

func (r *memoryRepository) expired(session *models.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(session.UpdatedAt) > r.ttl
}

// CreateSession stores a copy of input.Session under its code
func (r *memoryRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilInput
	}
	if input.Session.Code == "" {
		return nil, ErrEmptyCode
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[input.Session.Code]; ok {
		existing.mu.Lock()
		live := !r.expired(existing.session, r.clock.Now())
		if !live {
			existing.removed = true
		}
		existing.mu.Unlock()

		if live {
			return nil, ErrSessionExists
		}
	}

	r.entries[input.Session.Code] = &entry{session: input.Session.Clone()}

	return input.Session.Clone(), nil
}

func (r *memoryRepository) lookup(code string) (*entry, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	r.mu.RLock()
	e, ok := r.entries[code]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// GetSession returns a snapshot taken under the session lock
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := r.lookup(input.Code)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed || r.expired(e.session, r.clock.Now()) {
		return nil, ErrSessionNotFound
	}

	return e.session.Clone(), nil
}

// UpdateSession runs input.Update on a copy and commits it if no error is returned
func (r *memoryRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.Update == nil {
		return nil, ErrNilInput
	}

	e, err := r.lookup(input.Code)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed || r.expired(e.session, r.clock.Now()) {
		return nil, ErrSessionNotFound
	}

	working := e.session.Clone()
	if err := input.Update(working); err != nil {
		return nil, err
	}

	e.session = working

	return working.Clone(), nil
}

// SweepExpired drops every session idle for longer than the TTL at input.Now
func (r *memoryRepository) SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if r.ttl <= 0 {
		return &SweepExpiredOutput{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for code, e := range r.entries {
		e.mu.Lock()
		if r.expired(e.session, input.Now) {
			e.removed = true
			delete(r.entries, code)
			removed++
		}
		e.mu.Unlock()
	}

	return &SweepExpiredOutput{Removed: removed}, nil
}
