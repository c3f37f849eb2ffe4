package seed

import (
	"context"
	"testing"
	"time"

	"yatube/internal/adapters/memory"
	"yatube/internal/adapters/storage"
	"yatube/internal/app"
	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/follower"
	"yatube/internal/testutil"

	"github.com/gofrs/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeederRun(t *testing.T) {
	db := testutil.OpenDB(t)
	cfg := &config.Config{JWTSecret: "s", PostsPerPage: 10, IndexCacheTTL: time.Second, MediaURL: "/media/"}
	a := app.New(cfg, db, memory.NewPageCache(), storage.NewLocalStorage(afero.NewMemMapFs(), "/m", "/media/"))
	s := &Seeder{Users: a.Users, Groups: a.Groups, Posts: a.Posts, Comments: a.Comments, Followers: a.Followers}
	ctx := context.Background()

	res, err := s.Run(ctx, Options{Users: 4, Groups: 2, PostsPerUser: 3, FollowsPerUser: 2, CommentsPerPost: 1, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 4, Groups: 2, Posts: 12, Follows: 8, Comments: 12}, res)

	var edges int64
	require.NoError(t, db.Model(&follower.Follower{}).Count(&edges).Error)
	assert.Equal(t, int64(8), edges)

	page, err := a.Feed.IndexPage(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	groups, err := a.Groups.ListGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = a.Users.LoginUser(ctx, page.Items[0].Author.Username, DefaultPassword)
	require.NoError(t, err)

	following, err := a.Feed.Following(ctx, access.Actor{ID: uuid.FromStringOrNil(page.Items[0].Author.ID), Username: page.Items[0].Author.Username}, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, following.Items)
}
