package groupapp

import (
	"context"
	"testing"

	"yatube/internal/adapters/database"
	"yatube/internal/core/apperr"
	"yatube/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	s := NewGroupService(database.NewGroupRepositoryDatabase(testutil.OpenDB(t)))
	ctx := context.Background()

	g, err := s.CreateGroup(ctx, "cats", "Cats", "all about cats")
	require.NoError(t, err)
	assert.Equal(t, "cats", g.Slug)
	assert.NotZero(t, g.ID)

	tests := []struct {
		name, slug, title, field string
	}{
		{name: "bad slug", slug: "not a slug", title: "T", field: "slug"},
		{name: "empty slug", slug: "", title: "T", field: "slug"},
		{name: "empty title", slug: "dogs", title: " ", field: "title"},
		{name: "duplicate", slug: "cats", title: "Cats again", field: "slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateGroup(ctx, tt.slug, tt.title, "")
			appErr, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestGetAndListGroups(t *testing.T) {
	s := NewGroupService(database.NewGroupRepositoryDatabase(testutil.OpenDB(t)))
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, "zoo", "Zoo", "")
	require.NoError(t, err)
	_, err = s.CreateGroup(ctx, "art", "Art", "")
	require.NoError(t, err)

	g, err := s.GetBySlug(ctx, "zoo")
	require.NoError(t, err)
	assert.Equal(t, "Zoo", g.Title)

	_, err = s.GetBySlug(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err))

	list, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Art", list[0].Title)
}
