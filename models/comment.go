package models

import (
	"time"
)

type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_comments_user_id" json:"user_id"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_comments_post_created,priority:2" json:"created_at"`
}

// TableName pins the table name.
func (Comment) TableName() string {
	return "comments"
}

// All lists every model for schema migration.
func All() []any {
	return []any{&Users{}, &Post{}, &Follow{}, &Like{}, &Comment{}}
}
