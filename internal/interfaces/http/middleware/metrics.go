package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/infrastructure/metrics"
)

// Metrics records request counts and latency labelled by route template.
// Unmatched requests share the "unmatched" label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
