package access

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	author := Actor{ID: uuid.Must(uuid.NewV4()), Username: "author"}
	other := Actor{ID: uuid.Must(uuid.NewV4()), Username: "other"}

	assert.False(t, Anonymous.Authenticated())
	assert.False(t, CanCreatePost(Anonymous))
	assert.False(t, CanComment(Anonymous))
	assert.False(t, CanFollow(Anonymous))

	assert.True(t, CanCreatePost(other))
	assert.True(t, CanComment(other))
	assert.True(t, CanFollow(other))

	assert.True(t, CanEditPost(author, author.ID))
	assert.False(t, CanEditPost(other, author.ID))
	assert.False(t, CanEditPost(Anonymous, uuid.Nil))
}

func TestEditPost(t *testing.T) {
	authorID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name    string
		actor   Actor
		outcome Outcome
		target  string
	}{
		{name: "author", actor: Actor{ID: authorID}, outcome: Allowed},
		{name: "non-author", actor: Actor{ID: uuid.Must(uuid.NewV4())}, outcome: DenyRedirect, target: "/posts/5/"},
		{name: "anonymous", actor: Anonymous, outcome: DenyLogin, target: "/auth/login/?next=%2Fposts%2F5%2Fedit%2F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EditPost(tt.actor, 5, authorID)
			assert.Equal(t, tt.outcome, d.Outcome)
			assert.Equal(t, tt.target, d.Target)
			assert.Equal(t, tt.outcome == Allowed, d.Allowed())
		})
	}
}

func TestRequireAuth(t *testing.T) {
	d := RequireAuth(Anonymous, CreatePostPath)
	assert.Equal(t, DenyLogin, d.Outcome)
	assert.Equal(t, "/auth/login/?next=%2Fcreate%2F", d.Target)

	d = RequireAuth(Actor{ID: uuid.Must(uuid.NewV4())}, CreatePostPath)
	assert.True(t, d.Allowed())
	assert.Empty(t, d.Target)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/profile/leo/", ProfilePath("leo"))
	assert.Equal(t, "/posts/3/", PostDetailPath(3))
	assert.Equal(t, "/posts/3/comment/", PostCommentPath(3))
	assert.Equal(t, "/profile/leo/follow/", FollowPath("leo"))
	assert.Equal(t, "/profile/leo/unfollow/", UnfollowPath("leo"))
	assert.Equal(t, LoginPath, LoginRedirect(""))
	assert.Equal(t, "deny_login", DenyLogin.String())
}
