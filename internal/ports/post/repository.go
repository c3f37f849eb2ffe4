package post

import (
	"context"
	"io"
	"time"

	"yatube/internal/core/feed"
	"yatube/internal/core/post"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"

	"github.com/gofrs/uuid"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	// UpdateOwned writes text, group and image only if authorID still owns the post.
	UpdateOwned(ctx context.Context, post *post.Post, authorID uuid.UUID) error
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	Count(ctx context.Context, filter post.Filter) (int64, error)
	// Find lists newest first; a negative limit returns everything from offset.
	Find(ctx context.Context, filter post.Filter, offset, limit int) ([]*post.Post, error)
}

// ImageUpload فایل تصویر ارسال‌شده در فرم
type ImageUpload struct {
	Filename string
	Body     io.Reader
}

// PostInput فیلدهای قابل ویرایش پست
type PostInput struct {
	Text    string
	GroupID *uint
	Image   *ImageUpload
}

// DTOها برای UseCase
type PostDTO struct {
	ID        uint                `json:"id"`
	Text      string              `json:"text"`
	AuthorID  string              `json:"author_id"`
	Author    *userPort.UserDTO   `json:"author,omitempty"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	Image     string              `json:"image,omitempty"`
	ImageURL  string              `json:"image_url,omitempty"`
	CreatedAt string              `json:"created_at"`
}

// ToDTO imageURL is the public address of p.Image, empty when there is none.
func ToDTO(p *post.Post, imageURL string) *PostDTO {
	if p == nil {
		return nil
	}
	dto := &PostDTO{
		ID:        p.ID,
		Text:      p.Text,
		AuthorID:  p.AuthorID.String(),
		Image:     p.Image,
		ImageURL:  imageURL,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.Author.ID != uuid.Nil {
		dto.Author = userPort.ToDTO(&p.Author)
	}
	if p.Group != nil {
		dto.Group = groupPort.ToDTO(p.Group)
	}
	return dto
}

// PostPage یک صفحه از پست‌ها
type PostPage = feed.Page[*PostDTO]

type GroupFeed struct {
	Group *groupPort.GroupDTO `json:"group"`
	PostPage
}

type ProfileFeed struct {
	Author     *userPort.UserDTO `json:"author"`
	PostsCount int               `json:"posts_count"`
	// Following is false for anonymous viewers.
	Following bool `json:"following"`
	PostPage
}
