package commentapp

import (
	"context"
	"testing"

	"yatube/internal/adapters/database"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	"yatube/internal/core/post"
	"yatube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	db := testutil.OpenDB(t)
	ctx := context.Background()
	s := NewCommentService(database.NewCommentRepositoryDatabase(db), database.NewPostRepositoryDatabase(db))

	leo := testutil.CreateUser(t, db, "leo")
	mia := testutil.CreateUser(t, db, "mia")
	p, err := database.NewPostRepositoryDatabase(db).Create(ctx, &post.Post{Text: "post", AuthorID: leo.ID})
	require.NoError(t, err)
	miaActor := access.Actor{ID: mia.ID, Username: mia.Username}

	t.Run("anonymous is sent to login", func(t *testing.T) {
		_, err := s.AddComment(ctx, access.Anonymous, p.ID, "hi")
		appErr, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.CodeAuthenticationRequired, appErr.Code)
		assert.Equal(t, "/auth/login/?next=%2Fposts%2F1%2Fcomment%2F", appErr.Redirect)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := s.AddComment(ctx, miaActor, p.ID, " \n")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := s.AddComment(ctx, miaActor, 77, "hi")
		assert.True(t, apperr.IsNotFound(err))
	})

	first, err := s.AddComment(ctx, miaActor, p.ID, "  first\n")
	require.NoError(t, err)
	assert.Equal(t, "mia", first.Author.Username)
	assert.Equal(t, "first", first.Text)
	_, err = s.AddComment(ctx, access.Actor{ID: leo.ID, Username: "leo"}, p.ID, "second")
	require.NoError(t, err)

	list, err := s.ListForPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
	assert.Equal(t, "leo", list[1].Author.Username)
}
