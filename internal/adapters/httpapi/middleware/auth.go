package middleware

import (
	"strings"

	"yatube/internal/core/access"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// TokenParser resolves a bearer token to the actor it was issued to.
type TokenParser interface {
	ParseToken(raw string) (access.Actor, error)
}

// OptionalAuth attaches the actor named by a valid bearer token. Requests
// without one, or with a bad one, continue as anonymous.
func OptionalAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		actor, err := parser.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err == nil {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// Actor returns the request's actor, anonymous when none was attached.
func Actor(c *gin.Context) access.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(access.Actor); ok {
			return actor
		}
	}
	return access.Anonymous
}
