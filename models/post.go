package models

import (
	"time"
)

type Post struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_posts_user_created,priority:1" json:"user_id"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	ImageURL  *string   `gorm:"column:image_url;type:varchar(1024)" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_posts_user_created,priority:2;index:idx_posts_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
