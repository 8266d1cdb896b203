package service

import (
	"Chirp/dao"
	"Chirp/types"
	"context"
	"errors"
	"time"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
}

type FollowService struct {
	Follows   FollowStore
	Users     UserStore
	Publisher ActivityPublisher
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	if _, err := s.Users.FindById(ctx, followingID); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.Follows.Follow(ctx, followerID, followingID); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return ErrAlreadyFollowing
		}
		return err
	}

	s.Publisher.Publish(ctx, &types.ActivityEvent{
		Type:       types.ActivityFollow,
		ActorID:    followerID,
		TargetID:   followingID,
		OccurredAt: time.Now(),
	})
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	removed, err := s.Follows.Unfollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFollowing
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return s.Follows.IsFollowing(ctx, followerID, followingID)
}
