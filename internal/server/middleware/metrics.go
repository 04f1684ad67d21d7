package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/botwatch-dev/botwatch/internal/obs/otel"
)

// Metrics records request counters and latency through the otel tracker.
// A nil tracker disables recording without branching at call sites.
func Metrics(tracker *otel.RequestTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		tracker.Record(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
