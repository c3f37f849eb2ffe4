package database

import (
	"context"
	"fmt"

	"yatube/internal/core/apperr"
	"yatube/internal/core/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

// UpdateOwned ownership is part of the WHERE clause so a concurrent check
// cannot be raced.
func (repo *PostRepositoryDatabase) UpdateOwned(ctx context.Context, p *post.Post, authorID uuid.UUID) error {
	res := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ? AND author_id = ?", p.ID, authorID).
		Updates(map[string]interface{}{
			"text":     p.Text,
			"group_id": p.GroupID,
			"image":    p.Image,
		})
	if res.Error != nil {
		return fmt.Errorf("updating post %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&post.Post{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperr.NewNotFoundError("post", p.ID)
		}
		// MySQL reports zero affected rows when nothing changed; only a
		// different author is a denial.
		if err := repo.db.WithContext(ctx).Model(&post.Post{}).
			Where("id = ? AND author_id = ?", p.ID, authorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperr.NewAuthorizationDenied("")
		}
	}
	return nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Preload("Author").Preload("Group").First(&p, id).Error; err != nil {
		return nil, notFoundOr(err, "post", id)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter post.Filter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Model(&post.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PostRepositoryDatabase) Find(ctx context.Context, filter post.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	q := repo.filtered(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Offset(offset)
	if limit >= 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) filtered(ctx context.Context, filter post.Filter) *gorm.DB {
	q := repo.db.WithContext(ctx)
	if filter.GroupID != nil {
		q = q.Where("posts.group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != nil {
		q = q.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.FollowerID != nil {
		q = q.Joins("JOIN follows ON follows.author_id = posts.author_id").
			Where("follows.user_id = ?", *filter.FollowerID)
	}
	return q
}
