package dao

import (
	"Chirp/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

// Follow inserts the edge. A second insert of the same pair returns ErrDuplicate.
func (d *FollowDAO) Follow(ctx context.Context, followerID, followingID int64) error {
	return d.Create(ctx, &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
}

// Unfollow removes the edge and reports whether it existed.
func (d *FollowDAO) Unfollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFollowing reports whether the edge exists.
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// FollowingIDs returns everyone userID follows.
func (d *FollowDAO) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// FollowingSet returns the members of candidates that followerID follows.
func (d *FollowDAO) FollowingSet(ctx context.Context, followerID int64, candidates []int64) (map[int64]bool, error) {
	if followerID == 0 || len(candidates) == 0 {
		return map[int64]bool{}, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, candidates).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

// GetFollowerCount counts edges pointing at userID.
func (d *FollowDAO) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	return d.Count(ctx, "following_id = ?", userID)
}

// GetFollowingCount counts edges leaving userID.
func (d *FollowDAO) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	return d.Count(ctx, "follower_id = ?", userID)
}

// BatchFollowerCount counts followers for each user in userIDs. Users without
// followers are absent from the map.
func (d *FollowDAO) BatchFollowerCount(ctx context.Context, userIDs []int64) (map[int64]int64, error) {
	if len(userIDs) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []countRow
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Select("following_id AS id, COUNT(*) AS cnt").
		Where("following_id IN ?", userIDs).
		Group("following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// ListFollowers returns followers of userID, newest edge first.
func (d *FollowDAO) ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]*models.Users, error) {
	var users []*models.Users
	err := d.Db.WithContext(ctx).
		Model(&models.Users{}).
		Select("users.*").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Order("follows.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// ListFollowing returns users followed by userID, newest edge first.
func (d *FollowDAO) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]*models.Users, error) {
	var users []*models.Users
	err := d.Db.WithContext(ctx).
		Model(&models.Users{}).
		Select("users.*").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Order("follows.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}
