package janitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
)

// Evictor is the part of the session service the janitor drives
type Evictor interface {
	EvictExpired(ctx context.Context, input *sessionService.EvictExpiredInput) (*sessionService.EvictExpiredOutput, error)
}

// Config holds configuration for the janitor
type Config struct {
	Evictor  Evictor
	Interval time.Duration
	Logger   *slog.Logger
}

const defaultInterval = 10 * time.Minute

var ErrNilEvictor = errors.New("evictor cannot be nil")

// Janitor evicts idle sessions on a fixed interval
type Janitor struct {
	evictor  Evictor
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
	lastRun  time.Time
	evicted  int
}

// New creates a stopped janitor
func New(cfg *Config) (*Janitor, error) {
	if cfg == nil || cfg.Evictor == nil {
		return nil, ErrNilEvictor
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Janitor{
		evictor:  cfg.Evictor,
		interval: interval,
		logger:   logger,
	}, nil
}

// Start runs the sweep loop in the background until ctx is done or Stop is called
func (j *Janitor) Start(ctx context.Context) {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.stopChan = make(chan struct{})
	j.done = make(chan struct{})
	stop, done := j.stopChan, j.done
	j.mu.Unlock()

	j.logger.Info("janitor started", "interval", j.interval)

	go func() {
		defer close(done)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				j.markStopped()
				return
			case <-stop:
				return
			case <-ticker.C:
				j.RunOnce(ctx)
			}
		}
	}()
}

func (j *Janitor) markStopped() {
	j.mu.Lock()
	j.running = false
	j.mu.Unlock()
}

// Stop ends the loop and waits for an in-progress sweep to finish
func (j *Janitor) Stop() {
	j.mu.Lock()
	if !j.running {
		done := j.done
		j.mu.Unlock()
		if done != nil {
			<-done
		}
		return
	}
	j.running = false
	close(j.stopChan)
	done := j.done
	j.mu.Unlock()

	<-done
	j.logger.Info("janitor stopped")
}

// RunOnce performs a single sweep and returns the number of sessions evicted
func (j *Janitor) RunOnce(ctx context.Context) int {
	output, err := j.evictor.EvictExpired(ctx, &sessionService.EvictExpiredInput{})
	if err != nil {
		j.logger.Error("session sweep failed", "error", err)
		return 0
	}

	j.mu.Lock()
	j.lastRun = time.Now()
	j.evicted += output.Evicted
	j.mu.Unlock()

	return output.Evicted
}

// Status reports whether the loop is running and the totals so far
func (j *Janitor) Status() (running bool, lastRun time.Time, evicted int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running, j.lastRun, j.evicted
}
