package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStorage remembers logged-out session tokens until they would have expired.
type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{redis: rds}
}

// Revoke marks tokenID as logged out for ttl.
func (s *SessionStorage) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, s.name(tokenID), 1, ttl).Err()
}

func (s *SessionStorage) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.redis.Get(ctx, s.name(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// session:revoked:{jti}
func (s *SessionStorage) name(tokenID string) string {
	return fmt.Sprintf("session:revoked:%s", tokenID)
}
