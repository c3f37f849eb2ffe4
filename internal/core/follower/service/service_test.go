package followerapp

import (
	"context"
	"testing"

	"yatube/internal/adapters/database"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	"yatube/internal/core/follower"
	"yatube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, *FollowerService) {
	db := testutil.OpenDB(t)
	return db, NewFollowerService(database.NewFollowerRepositoryDatabase(db), database.NewUserRepositoryDatabase(db))
}

func countEdges(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&follower.Follower{}).Count(&n).Error)
	return n
}

func TestFollow_Idempotent(t *testing.T) {
	db, s := setup(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "reader")
	testutil.CreateUser(t, db, "writer")
	reader := access.Actor{ID: u.ID, Username: u.Username}

	require.NoError(t, s.Follow(ctx, reader, "writer"))
	require.NoError(t, s.Follow(ctx, reader, "writer"))
	assert.Equal(t, int64(1), countEdges(t, db))

	require.NoError(t, s.Follow(ctx, reader, "reader"))
	assert.Equal(t, int64(1), countEdges(t, db))
}

func TestFollow_Rejections(t *testing.T) {
	db, s := setup(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "reader")
	testutil.CreateUser(t, db, "writer")

	err := s.Follow(ctx, access.Anonymous, "writer")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeAuthenticationRequired, appErr.Code)
	assert.Equal(t, "/auth/login/?next=%2Fprofile%2Fwriter%2Ffollow%2F", appErr.Redirect)

	err = s.Follow(ctx, access.Actor{ID: u.ID, Username: u.Username}, "ghost")
	assert.True(t, apperr.IsNotFound(err))
	assert.Zero(t, countEdges(t, db))
}

func TestUnfollow(t *testing.T) {
	db, s := setup(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "reader")
	w := testutil.CreateUser(t, db, "writer")
	reader := access.Actor{ID: u.ID, Username: u.Username}

	err := s.Unfollow(ctx, reader, "writer")
	assert.True(t, apperr.IsNotFound(err))

	require.NoError(t, s.Follow(ctx, reader, "writer"))
	following, err := s.IsFollowing(ctx, reader, w.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, s.Unfollow(ctx, reader, "writer"))
	following, err = s.IsFollowing(ctx, reader, w.ID)
	require.NoError(t, err)
	assert.False(t, following)

	following, err = s.IsFollowing(ctx, access.Anonymous, w.ID)
	require.NoError(t, err)
	assert.False(t, following)

	err = s.Unfollow(ctx, access.Anonymous, "writer")
	assert.True(t, apperr.IsAuthenticationRequired(err))
}

func TestFollowerLists(t *testing.T) {
	db, s := setup(t)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "a")
	b := testutil.CreateUser(t, db, "b")
	testutil.CreateUser(t, db, "writer")

	require.NoError(t, s.Follow(ctx, access.Actor{ID: a.ID, Username: "a"}, "writer"))
	require.NoError(t, s.Follow(ctx, access.Actor{ID: b.ID, Username: "b"}, "writer"))
	require.NoError(t, s.Follow(ctx, access.Actor{ID: a.ID, Username: "a"}, "b"))

	followers, err := s.GetFollowers(ctx, "writer")
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "a", followers[0].Username)
	assert.Equal(t, "writer", followers[0].Author)

	following, err := s.GetFollowing(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, following, 2)

	none, err := s.GetFollowing(ctx, "writer")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = s.GetFollowers(ctx, "ghost")
	assert.True(t, apperr.IsNotFound(err))
}
