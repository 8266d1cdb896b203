package service

import (
	"Chirp/dao"
	"Chirp/types"
	"context"
	"errors"
	"time"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, postID int64) (*types.LikeState, error)
	Unlike(ctx context.Context, userID, postID int64) (*types.LikeState, error)
}

type LikeService struct {
	Likes     LikeStore
	Posts     PostStore
	Publisher ActivityPublisher
}

func (s *LikeService) Like(ctx context.Context, userID, postID int64) (*types.LikeState, error) {
	post, err := s.Posts.FindById(ctx, postID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if err := s.Likes.Like(ctx, userID, postID); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	s.Publisher.Publish(ctx, &types.ActivityEvent{
		Type:       types.ActivityLike,
		ActorID:    userID,
		TargetID:   post.UserID,
		PostID:     postID,
		OccurredAt: time.Now(),
	})
	return s.state(ctx, postID, true)
}

func (s *LikeService) Unlike(ctx context.Context, userID, postID int64) (*types.LikeState, error) {
	removed, err := s.Likes.Unlike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrNotLiked
	}
	return s.state(ctx, postID, false)
}

func (s *LikeService) state(ctx context.Context, postID int64, liked bool) (*types.LikeState, error) {
	n, err := s.Likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &types.LikeState{LikesCount: n, IsLiked: liked}, nil
}
