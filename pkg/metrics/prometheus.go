package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	totalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "code"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	backendCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_backend_requests_total",
			Help: "Total number of requests sent to the users backend",
		},
		[]string{"operation", "outcome"},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "users_backend_request_duration_seconds",
			Help:    "Users backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(totalRequests)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(backendCalls)
	prometheus.MustRegister(backendDuration)
}

// Outcome labels for backend calls
const (
	OutcomeSuccess     = "success"
	OutcomeUnreachable = "unreachable"
	OutcomeStatus      = "status"
	OutcomeInvalid     = "invalid_response"
)

// ObserveBackendCall records one request to the users backend.
func ObserveBackendCall(operation, outcome string, elapsed time.Duration) {
	backendCalls.WithLabelValues(operation, outcome).Inc()
	backendDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		codeStr := strconv.Itoa(c.Writer.Status())
		totalRequests.WithLabelValues(c.Request.Method, endpoint, codeStr).Inc()
		requestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
