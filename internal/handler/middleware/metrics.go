package middleware

import (
	"strconv"
	"time"

	"tablebook/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-route request counters and latency. Routes
// are labeled by template path so path parameters do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	metrics.Register()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(
			route,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
