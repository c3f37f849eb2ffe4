package middleware

import (
	"time"

	"yatube/internal/observability"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency by route pattern.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
