package group

// Group دسته‌بندی موضوعی پست‌ها؛ slug پس از ساخت تغییر نمی‌کند
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
}

func (Group) TableName() string { return "groups" }

func (g Group) String() string { return g.Title }
