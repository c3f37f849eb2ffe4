package follower

import (
	"time"

	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
)

// Follower یال جهت‌دار user -> author؛ برای هر جفت حداکثر یک رکورد
type Follower struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair,priority:1;check:chk_follow_not_self,user_id <> author_id"`
	User      user.User `gorm:"foreignKey:UserID"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair,priority:2;index"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Follower) TableName() string { return "follows" }
