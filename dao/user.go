package dao

import (
	"Chirp/models"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// Create inserts user with its search key filled in.
func (u *Users) Create(ctx context.Context, user *models.Users) error {
	user.RefreshSearchKey()
	return u.Repo.Create(ctx, user)
}

// FindByUsername looks a user up by exact username.
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsUsernameTaken reports whether another account already uses username.
func (u *Users) IsUsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ? AND id <> ?", username, exceptID)
}

func (u *Users) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

func (u *Users) FindByIDs(ctx context.Context, ids []int64) ([]*models.Users, error) {
	if len(ids) == 0 {
		return []*models.Users{}, nil
	}
	var users []*models.Users
	err := u.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}

func (u *Users) Update(ctx context.Context, userID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	err := u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Users{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return err
		}
		if !touchesSearchKey(updates) {
			return nil
		}
		var user models.Users
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.RefreshSearchKey()
		return tx.Model(&models.Users{}).Where("id = ?", userID).UpdateColumn("search_key", user.SearchKey).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("dao.Users.Update: %w", err)
	}
	return nil
}

func touchesSearchKey(updates map[string]interface{}) bool {
	for _, col := range []string{"username", "first_name", "last_name"} {
		if _, ok := updates[col]; ok {
			return true
		}
	}
	return false
}

// ListExcluding returns the newest accounts not in exclude.
func (u *Users) ListExcluding(ctx context.Context, exclude []int64, limit int) ([]*models.Users, error) {
	var users []*models.Users
	query := u.Db.WithContext(ctx).Model(&models.Users{})
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// Search matches keyword case-insensitively as a substring of username,
// first name or last name. excludeID of 0 excludes nobody.
func (u *Users) Search(ctx context.Context, keyword string, excludeID int64, limit int) ([]*models.Users, error) {
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"

	var users []*models.Users
	query := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("search_key LIKE ? ESCAPE '!'", pattern)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
