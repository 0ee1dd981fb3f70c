package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// Metrics records per-request counters and latency histograms, labelled by
// route template rather than raw path to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, endpoint).
			Observe(time.Since(start).Seconds())
	}
}
