package models

import (
	"time"
)

// Follow is a directed edge follower -> following. At most one per ordered pair.
type Follow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"`
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2;index:idx_following_id" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
