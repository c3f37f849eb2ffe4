package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube/internal/adapters/memory"
	"yatube/internal/adapters/storage"
	"yatube/internal/config"
	"yatube/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:           "test",
		JWTSecret:     "secret",
		PostsPerPage:  10,
		IndexCacheTTL: 20 * time.Second,
		MediaBackend:  "local",
		MediaRoot:     "media",
		MediaURL:      "/media/",
	}
}

func TestNewWiresRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	a := New(cfg, testutil.OpenDB(t), memory.NewPageCache(), storage.NewLocalStorage(afero.NewMemMapFs(), "/m", cfg.MediaURL))
	r := a.Router()

	for _, target := range []string{"/health", "/", "/groups/", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
	assert.Equal(t, 10, a.Feed.PageSize)
}

func TestNewImageStorage(t *testing.T) {
	cfg := testConfig()
	s, err := NewImageStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	cfg.MediaBackend = "s3"
	cfg.AWSRegion = "eu-west-1"
	cfg.AWSBucket = "bucket"
	cfg.AWSAccessKey = "key"
	cfg.AWSSecretKey = "secret"
	s, err = NewImageStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &storage.S3Storage{}, s)
	assert.Equal(t, "https://bucket.s3.eu-west-1.amazonaws.com/posts/a.gif", s.URL("posts/a.gif"))
}
