package follower

import (
	"context"

	"yatube/internal/core/follower"

	"github.com/gofrs/uuid"
)

// FollowerRepository پورت برای ذخیره‌سازی و بازیابی دنبال‌کنندگان
type FollowerRepository interface {
	// FollowUser inserts the edge unless it already exists; created reports whether a row was written.
	FollowUser(ctx context.Context, f *follower.Follower) (created bool, err error)
	// UnfollowUser deletes the edge; removed is false when there was none.
	UnfollowUser(ctx context.Context, userID, authorID uuid.UUID) (removed bool, err error)
	GetFollowersByUserID(ctx context.Context, authorID uuid.UUID) ([]*follower.Follower, error)
	GetFollowingByUserID(ctx context.Context, userID uuid.UUID) ([]*follower.Follower, error)
	IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}

// DTOها برای UseCase
type FollowerDTO struct {
	ID       uint   `json:"id"`
	UserID   string `json:"userId"`
	Username string `json:"username,omitempty"`
	AuthorID string `json:"authorId"`
	Author   string `json:"author,omitempty"`
}

func ToDTO(f *follower.Follower) *FollowerDTO {
	return &FollowerDTO{
		ID:       f.ID,
		UserID:   f.UserID.String(),
		Username: f.User.Username,
		AuthorID: f.AuthorID.String(),
		Author:   f.Author.Username,
	}
}
