package comment

import (
	"context"
	"time"

	"yatube/internal/core/comment"
	userPort "yatube/internal/ports/user"

	"github.com/gofrs/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// FindByPostID lists oldest first.
	FindByPostID(ctx context.Context, postID uint) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        uint              `json:"id"`
	PostID    uint              `json:"post_id"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	Text      string            `json:"text"`
	CreatedAt string            `json:"created_at"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	dto := &CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.Author.ID != uuid.Nil {
		dto.Author = userPort.ToDTO(&c.Author)
	}
	return dto
}
