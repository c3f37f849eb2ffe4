package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"yatube/internal/core/access"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubParser struct {
	actor access.Actor
}

func (p stubParser) ParseToken(raw string) (access.Actor, error) {
	if raw != "good" {
		return access.Anonymous, errors.New("bad token")
	}
	return p.actor, nil
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	leo := access.Actor{ID: uuid.Must(uuid.NewV4()), Username: "leo"}

	r := gin.New()
	r.Use(OptionalAuth(stubParser{actor: leo}))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Actor(c).Username)
	})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid token", header: "Bearer good", want: "leo"},
		{name: "invalid token", header: "Bearer bad", want: ""},
		{name: "no header", want: ""},
		{name: "wrong scheme", header: "Basic good", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)), Metrics())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	entries := logs.FilterMessage("HTTP Request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "/ping?x=1", fields["path"])
		assert.Equal(t, int64(http.StatusNoContent), fields["status"])
		assert.Equal(t, "GET", fields["method"])
	}
}
