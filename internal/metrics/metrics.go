package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feastfinder"

// Collectors holds the application's Prometheus collectors. It satisfies the
// session service's Recorder interface.
type Collectors struct {
	sessionsCreated  prometheus.Counter
	membersJoined    prometheus.Counter
	votesRecorded    *prometheus.CounterVec
	decisionQueries  *prometheus.CounterVec
	sessionsEvicted  prometheus.Counter
	requestsTotal    *prometheus.CounterVec
	requestsInFlight prometheus.Gauge
	requestDuration  *prometheus.HistogramVec
}

// New registers all collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)

	return &Collectors{
		sessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of sessions created",
		}),
		membersJoined: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "members_joined_total",
			Help:      "Total number of users added to a session after creation",
		}),
		votesRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_recorded_total",
			Help:      "Total number of votes recorded",
		}, []string{"liked"}),
		decisionQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decision_queries_total",
			Help:      "Total number of decision reads, by resulting kind",
		}, []string{"kind"}),
		sessionsEvicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Total number of idle sessions evicted",
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "endpoint", "status"}),
	}
}

// SessionCreated counts a new session
func (c *Collectors) SessionCreated() {
	c.sessionsCreated.Inc()
}

// MemberJoined counts a user added to a session
func (c *Collectors) MemberJoined() {
	c.membersJoined.Inc()
}

// VoteRecorded counts a vote by its value
func (c *Collectors) VoteRecorded(liked bool) {
	c.votesRecorded.WithLabelValues(strconv.FormatBool(liked)).Inc()
}

// DecisionQueried counts one decision read by its resulting kind
func (c *Collectors) DecisionQueried(kind string) {
	c.decisionQueries.WithLabelValues(kind).Inc()
}

// SessionsEvicted adds count evicted sessions
func (c *Collectors) SessionsEvicted(count int) {
	c.sessionsEvicted.Add(float64(count))
}

// Middleware collects request count, latency and in-flight gauge for gin routes
func (c *Collectors) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		c.requestsInFlight.Inc()
		defer c.requestsInFlight.Dec()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())

		c.requestsTotal.WithLabelValues(ctx.Request.Method, endpoint, status).Inc()
		c.requestDuration.WithLabelValues(ctx.Request.Method, endpoint, status).Observe(time.Since(start).Seconds())
	}
}
