package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/feastfinder/internal/common/uuid"
	"github.com/KirkDiggler/feastfinder/internal/metrics"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilSessionService = errors.New("session service cannot be nil")
	ErrNilCandidates     = errors.New("candidate provider cannot be nil")
)

// Config holds the dependencies of the HTTP layer
type Config struct {
	SessionService sessionService.Service
	Candidates     candidates.Provider

	// Metrics adds request instrumentation when set
	Metrics *metrics.Collectors

	// Gatherer backs /metrics; the route is omitted when nil
	Gatherer prometheus.Gatherer

	// UUID mints request ids; defaults to random UUIDs
	UUID uuid.UUID

	Logger *slog.Logger

	// CandidateLimit is how many restaurants a sourced session gets
	CandidateLimit int
}

type handler struct {
	sessions       sessionService.Service
	candidates     candidates.Provider
	logger         *slog.Logger
	candidateLimit int
}

// NewRouter builds the gin engine with every route registered
func NewRouter(cfg *Config) (*gin.Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}
	if cfg.Candidates == nil {
		return nil, ErrNilCandidates
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	limit := cfg.CandidateLimit
	if limit <= 0 {
		limit = candidates.DefaultLimit
	}

	h := &handler{
		sessions:       cfg.SessionService,
		candidates:     cfg.Candidates,
		logger:         logger,
		candidateLimit: limit,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID(ids))
	r.Use(Logging(logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:code", h.GetSession)
		api.POST("/sessions/:code/join", h.JoinSession)
		api.POST("/sessions/:code/vote", h.RecordVote)
		api.GET("/sessions/:code/ballot", h.GetBallot)
		api.GET("/sessions/:code/results", h.GetResults)
		api.GET("/sessions/:code/status", h.GetStatus)

		api.POST("/restaurants/nearby", h.Nearby)
	}

	return r, nil
}
