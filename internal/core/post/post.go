package post

import (
	"time"

	"yatube/internal/core/group"
	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
)

// Post پست یک نویسنده؛ نویسنده بعد از ساخت عوض نمی‌شود
type Post struct {
	ID        uint         `gorm:"primaryKey"`
	Text      string       `gorm:"type:text;not null"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID"`
	GroupID   *uint        `gorm:"index"`
	Group     *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Image     string       `gorm:"type:varchar(255)"`
	CreatedAt time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

const previewLength = 15

// String returns the first characters of the text.
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) > previewLength {
		r = r[:previewLength]
	}
	return string(r)
}

// Filter narrows a post listing. Zero value lists every post.
type Filter struct {
	GroupID    *uint
	AuthorID   *uuid.UUID
	FollowerID *uuid.UUID
}
