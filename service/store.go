package service

import (
	"Chirp/models"
	"context"
)

// The store contracts below are satisfied by the gorm DAOs in package dao.
// Lookups of a single row return gorm.ErrRecordNotFound when it is absent and
// inserts that violate a unique index return dao.ErrDuplicate.

type UserStore interface {
	Create(ctx context.Context, user *models.Users) error
	FindById(ctx context.Context, id int64) (*models.Users, error)
	FindByUsername(ctx context.Context, username string) (*models.Users, error)
	FindByEmail(ctx context.Context, email string) (*models.Users, error)
	IsUsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Users, error)
	Update(ctx context.Context, userID int64, updates map[string]interface{}) error
	ListExcluding(ctx context.Context, exclude []int64, limit int) ([]*models.Users, error)
	Search(ctx context.Context, keyword string, excludeID int64, limit int) ([]*models.Users, error)
}

type FollowStore interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	FollowingIDs(ctx context.Context, userID int64) ([]int64, error)
	FollowingSet(ctx context.Context, followerID int64, candidates []int64) (map[int64]bool, error)
	GetFollowerCount(ctx context.Context, userID int64) (int64, error)
	GetFollowingCount(ctx context.Context, userID int64) (int64, error)
	BatchFollowerCount(ctx context.Context, userIDs []int64) (map[int64]int64, error)
	ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]*models.Users, error)
	ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]*models.Users, error)
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindById(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, authorIDs []int64, limit, offset int) ([]*models.Post, error)
	FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*models.Post, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	UpdateOwned(ctx context.Context, postID, userID int64, updates map[string]any) (bool, error)
	DeleteOwned(ctx context.Context, postID, userID int64) (bool, error)
}

type LikeStore interface {
	Like(ctx context.Context, userID, postID int64) error
	Unlike(ctx context.Context, userID, postID int64) (bool, error)
	IsLiked(ctx context.Context, userID, postID int64) (bool, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	BatchCount(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	LikedSet(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID int64, limit, offset int) ([]*models.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	BatchCount(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	DeleteOwned(ctx context.Context, commentID, userID int64) (bool, error)
}
