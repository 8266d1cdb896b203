package database

import (
	"Chirp/pkg/log"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// IsDuplicateKey reports a unique index violation, including drivers that do
// not translate it into gorm.ErrDuplicatedKey.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}

// quietDuplicates logs unique violations at debug. They surface to callers as
// conflicts and are not database faults.
type quietDuplicates struct {
	gormlogger.Interface
}

func newLogger() gormlogger.Interface {
	return quietDuplicates{gormlogger.New(zap.NewStdLog(log.L), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})}
}

func (l quietDuplicates) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return quietDuplicates{l.Interface.LogMode(level)}
}

func (l quietDuplicates) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if IsDuplicateKey(err) {
		if ce := log.L.Check(zap.DebugLevel, "duplicate key"); ce != nil {
			sql, _ := fc()
			ce.Write(zap.String("sql", sql), zap.Error(err))
		}
		return
	}
	l.Interface.Trace(ctx, begin, fc, err)
}
