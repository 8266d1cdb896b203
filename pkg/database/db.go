package database

import (
	"Chirp/config"
	"Chirp/models"
	"Chirp/pkg/log"
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDB opens the configured database or exits.
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

// Open dials the configured driver. In-memory SQLite is pinned to a single
// connection so every query sees the same database.
func Open(conf *config.Database) (*gorm.DB, error) {
	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
	}
	return db, nil
}

func dialectorFor(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMySQL, "":
		return mysql.Open(conf.Dsn()), nil
	case config.DriverPostgres:
		return postgres.Open(conf.Dsn()), nil
	case config.DriverSQLite:
		return sqlite.Open(conf.Dsn()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Migrate creates or alters the tables of every model and fills search keys
// of accounts created before the column existed.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	return backfillSearchKeys(db)
}

func backfillSearchKeys(db *gorm.DB) error {
	var users []*models.Users
	return db.Where("search_key = ''").FindInBatches(&users, 500, func(_ *gorm.DB, _ int) error {
		for _, u := range users {
			u.RefreshSearchKey()
			if u.SearchKey == "" {
				continue
			}
			if err := db.Model(&models.Users{}).Where("id = ?", u.ID).UpdateColumn("search_key", u.SearchKey).Error; err != nil {
				return err
			}
		}
		return nil
	}).Error
}

// Ping checks the connection within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
