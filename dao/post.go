package dao

import (
	"Chirp/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// List returns posts newest first. A nil authorIDs lists every author; an
// empty non-nil slice matches nothing.
func (d *PostDAO) List(ctx context.Context, authorIDs []int64, limit, offset int) ([]*models.Post, error) {
	if authorIDs != nil && len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}
	var posts []*models.Post
	query := d.Db.WithContext(ctx).Model(&models.Post{})
	if authorIDs != nil {
		query = query.Where("user_id IN ?", authorIDs)
	}
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// FindByUserID lists one author's posts, newest first.
func (d *PostDAO) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*models.Post, error) {
	return d.List(ctx, []int64{userID}, limit, offset)
}

func (d *PostDAO) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	return d.Count(ctx, "user_id = ?", userID)
}

// UpdateOwned applies updates only when userID owns the post and reports
// whether a row matched.
func (d *PostDAO) UpdateOwned(ctx context.Context, postID, userID int64, updates map[string]any) (bool, error) {
	updates["updated_at"] = time.Now()
	res := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Updates(updates)
	if res.Error != nil {
		return false, fmt.Errorf("dao.PostDAO.UpdateOwned: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteOwned removes the post with its likes and comments when userID owns it.
func (d *PostDAO) DeleteOwned(ctx context.Context, postID, userID int64) (bool, error) {
	deleted := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", postID, userID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
	})
	if err != nil {
		return false, fmt.Errorf("dao.PostDAO.DeleteOwned: %w", err)
	}
	return deleted, nil
}
