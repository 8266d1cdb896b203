package models

import (
	"strings"
	"time"
)

// Users is the identity record.
// Email and username are optional but unique when set.
type Users struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Email           *string   `gorm:"column:email;type:varchar(255);uniqueIndex:uk_users_email" json:"email"`
	Username        *string   `gorm:"column:username;type:varchar(30);uniqueIndex:uk_users_username" json:"username"`
	FirstName       *string   `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName        *string   `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	Bio             *string   `gorm:"column:bio;type:varchar(300)" json:"bio"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar(1024)" json:"profile_image_url"`
	Password        string    `gorm:"column:password;type:varchar(255);not null;default:''" json:"-"`
	SearchKey       string    `gorm:"column:search_key;type:varchar(512);not null;default:''" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;index:idx_users_created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// HasPassword reports whether the account requires a password at login.
func (u *Users) HasPassword() bool {
	return u.Password != ""
}

// RefreshSearchKey folds username and names into the lowercase text user
// search matches against. SQLite's LOWER folds ASCII only, so this is done in Go.
func (u *Users) RefreshSearchKey() {
	parts := make([]string, 0, 3)
	for _, v := range []*string{u.Username, u.FirstName, u.LastName} {
		if v != nil && *v != "" {
			parts = append(parts, strings.ToLower(*v))
		}
	}
	u.SearchKey = strings.Join(parts, "\n")
}
