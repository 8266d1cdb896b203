package service

import (
	"Chirp/models"
	"Chirp/pkg/snowflake"
	"Chirp/types"
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

const maxContentLength = 500

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostView, error)
	Update(ctx context.Context, postID, userID int64, req *types.UpdatePostRequest) (*types.PostView, error)
	Delete(ctx context.Context, postID, userID int64) error
}

type PostService struct {
	Posts     PostStore
	Users     UserStore
	Annotator *Annotator
}

func (s *PostService) Create(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostView, error) {
	content, err := normalizeContent(req.Content)
	if err != nil {
		return nil, err
	}
	author, err := s.Users.FindById(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Content:   content,
		ImageURL:  trimmedOrNil(req.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}

	v := types.NewPostView(post, author)
	return &v, nil
}

// Update replaces content and image. Missing posts and posts owned by someone
// else are both ErrPostNotFound.
func (s *PostService) Update(ctx context.Context, postID, userID int64, req *types.UpdatePostRequest) (*types.PostView, error) {
	content, err := normalizeContent(req.Content)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"content":   content,
		"image_url": trimmedOrNil(req.ImageURL),
	}
	ok, err := s.Posts.UpdateOwned(ctx, postID, userID, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPostNotFound
	}

	post, err := s.Posts.FindById(ctx, postID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	author, err := s.Users.FindById(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.Annotator.Post(ctx, post, author, userID)
}

func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	ok, err := s.Posts.DeleteOwned(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}

// normalizeContent trims text and enforces 1-500 characters.
func normalizeContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(content); n == 0 || n > maxContentLength {
		return "", ErrInvalidContent
	}
	return content, nil
}
