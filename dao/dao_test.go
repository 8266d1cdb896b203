package dao

import (
	"Chirp/config"
	"Chirp/models"
	"Chirp/pkg/database"
	"Chirp/pkg/snowflake"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Database{Driver: config.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, db *gorm.DB, username string) *models.Users {
	t.Helper()
	now := time.Now()
	u := &models.Users{
		ID:        snowflake.GenID(),
		Email:     strPtr(username + "@example.com"),
		Username:  strPtr(username),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewUsers(db).Create(context.Background(), u))
	return u
}

func seedPost(t *testing.T, db *gorm.DB, userID int64, content string) *models.Post {
	t.Helper()
	now := time.Now()
	p := &models.Post{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewPostDAO(db).Create(context.Background(), p))
	return p
}

func userIDs(users []*models.Users) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
