package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stayzen_http_requests_total",
		Help: "Total number of processed HTTP requests",
	}, []string{"method", "path", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stayzen_http_request_duration_seconds",
		Help:    "Duration of HTTP request processing",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Metrics records a counter and duration sample per finished request, keyed
// by route template rather than raw path to keep cardinality bounded.
func Metrics(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}

	requestsProcessed.
		WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
		Inc()
	requestDuration.
		WithLabelValues(c.Request.Method, path).
		Observe(time.Since(start).Seconds())
}
