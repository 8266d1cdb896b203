package dao

import (
	"Chirp/pkg/database"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// Repo is the generic base repository embedded by every DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	if err := r.Db.WithContext(ctx).Create(item).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindById returns gorm.ErrRecordNotFound when the row is absent.
func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).
		Model(new(T)).
		Where(where, args...).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).
		Model(new(T)).
		Where(where, args...).
		Count(&count).Error
	return count, err
}

func isDuplicate(err error) bool {
	return database.IsDuplicateKey(err)
}

// countRow is the scan target of grouped COUNT queries.
type countRow struct {
	ID  int64 `gorm:"column:id"`
	Cnt int64 `gorm:"column:cnt"`
}

func toCountMap(rows []countRow) map[int64]int64 {
	m := make(map[int64]int64, len(rows))
	for _, row := range rows {
		m[row.ID] = row.Cnt
	}
	return m
}

func toSet(ids []int64) map[int64]bool {
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
