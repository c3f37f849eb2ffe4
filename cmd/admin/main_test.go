package main

import (
	"context"
	"testing"
	"time"

	"yatube/internal/adapters/memory"
	"yatube/internal/adapters/storage"
	"yatube/internal/app"
	"yatube/internal/config"
	"yatube/internal/testutil"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cache := memory.NewPageCache()
	cfg := &config.Config{JWTSecret: "s", PostsPerPage: 10, IndexCacheTTL: time.Minute}
	a := app.New(cfg, testutil.OpenDB(t), cache, storage.NewLocalStorage(afero.NewMemMapFs(), "/m", "/media/"))
	ctx := context.Background()

	require.NoError(t, run(ctx, a, []string{"create-group", "cats", "Cats", "all", "about", "cats"}))
	g, err := a.Groups.GetBySlug(ctx, "cats")
	require.NoError(t, err)
	assert.Equal(t, "all about cats", g.Description)

	assert.Error(t, run(ctx, a, []string{"create-group", "cats"}))
	assert.Error(t, run(ctx, a, []string{"create-group", "cats", "Again"}))
	require.NoError(t, run(ctx, a, []string{"list-groups"}))

	assert.Error(t, run(ctx, a, []string{"bogus"}))
}

func TestRunClearCache(t *testing.T) {
	cache := memory.NewPageCache()
	cfg := &config.Config{JWTSecret: "s", PostsPerPage: 10, IndexCacheTTL: time.Minute}
	a := app.New(cfg, testutil.OpenDB(t), cache, storage.NewLocalStorage(afero.NewMemMapFs(), "/m", "/media/"))
	ctx := context.Background()

	_, err := a.Feed.Index(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	// کش داخل همین پروسه است؛ پاک کردنش به سرور در حال اجرا نمی‌رسد
	err = run(ctx, a, []string{"clear-cache"})
	assert.ErrorIs(t, err, app.ErrCacheNotShared)
	assert.Equal(t, 1, cache.Len())

	a.SharedCache = true
	require.NoError(t, run(ctx, a, []string{"clear-cache"}))
	assert.Zero(t, cache.Len())
}
