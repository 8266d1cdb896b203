package dao

import (
	"Chirp/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByPost returns a post's comments newest first. A negative limit means no limit.
func (d *Comment) ListByPost(ctx context.Context, postID int64, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (d *Comment) CountByPost(ctx context.Context, postID int64) (int64, error) {
	return d.Count(ctx, "post_id = ?", postID)
}

func (d *Comment) BatchCount(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	if len(postIDs) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []countRow
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id AS id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// DeleteOwned deletes the comment only when userID wrote it.
func (d *Comment) DeleteOwned(ctx context.Context, commentID, userID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
