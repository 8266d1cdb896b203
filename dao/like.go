package dao

import (
	"Chirp/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// Like inserts the edge, ErrDuplicate if the user already likes the post.
func (d *LikeDAO) Like(ctx context.Context, userID, postID int64) error {
	return d.Create(ctx, &models.Like{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	})
}

// Unlike removes the edge and reports whether it existed.
func (d *LikeDAO) Unlike(ctx context.Context, userID, postID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *LikeDAO) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND post_id = ?", userID, postID)
}

func (d *LikeDAO) CountByPost(ctx context.Context, postID int64) (int64, error) {
	return d.Count(ctx, "post_id = ?", postID)
}

// BatchCount counts likes per post. Posts without likes are absent.
func (d *LikeDAO) BatchCount(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	if len(postIDs) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []countRow
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Select("post_id AS id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// LikedSet returns the members of postIDs liked by userID.
func (d *LikeDAO) LikedSet(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	if userID == 0 || len(postIDs) == 0 {
		return map[int64]bool{}, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}
