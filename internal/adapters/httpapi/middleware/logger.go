package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it has been served.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if actor := Actor(c); actor.Authenticated() {
			fields = append(fields, zap.String("user", actor.Username))
		}
		if len(c.Errors) > 0 {
			log.Error("HTTP Request", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		log.Info("HTTP Request", fields...)
	}
}
