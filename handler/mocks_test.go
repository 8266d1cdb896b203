package handler

import (
	"Chirp/models"
	"Chirp/types"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Signup(_ context.Context, req *types.SignupRequest) (*models.Users, error) {
	args := m.Called(req)
	u, _ := args.Get(0).(*models.Users)
	return u, args.Error(1)
}

func (m *mockUserService) Login(_ context.Context, identifier, password string) (*models.Users, error) {
	args := m.Called(identifier, password)
	u, _ := args.Get(0).(*models.Users)
	return u, args.Error(1)
}

func (m *mockUserService) GetCurrent(_ context.Context, userID int64) (*models.Users, error) {
	args := m.Called(userID)
	u, _ := args.Get(0).(*models.Users)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateProfile(_ context.Context, userID int64, req *types.UpdateProfileRequest) (*models.Users, error) {
	args := m.Called(userID, req)
	u, _ := args.Get(0).(*models.Users)
	return u, args.Error(1)
}

type mockFollowService struct{ mock.Mock }

func (m *mockFollowService) Follow(_ context.Context, followerID, followingID int64) error {
	return m.Called(followerID, followingID).Error(0)
}

func (m *mockFollowService) Unfollow(_ context.Context, followerID, followingID int64) error {
	return m.Called(followerID, followingID).Error(0)
}

func (m *mockFollowService) IsFollowing(_ context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

type mockFeedService struct{ mock.Mock }

func (m *mockFeedService) GlobalFeed(_ context.Context, viewerID int64, limit, offset int) ([]types.PostView, error) {
	args := m.Called(viewerID, limit, offset)
	v, _ := args.Get(0).([]types.PostView)
	return v, args.Error(1)
}

func (m *mockFeedService) PersonalFeed(_ context.Context, viewerID int64, limit, offset int) ([]types.PostView, error) {
	args := m.Called(viewerID, limit, offset)
	v, _ := args.Get(0).([]types.PostView)
	return v, args.Error(1)
}

func (m *mockFeedService) GetPost(_ context.Context, postID, viewerID int64) (*types.PostView, error) {
	args := m.Called(postID, viewerID)
	v, _ := args.Get(0).(*types.PostView)
	return v, args.Error(1)
}

func (m *mockFeedService) AuthorPosts(_ context.Context, identifier string, viewerID int64, limit, offset int) ([]types.PostView, error) {
	args := m.Called(identifier, viewerID, limit, offset)
	v, _ := args.Get(0).([]types.PostView)
	return v, args.Error(1)
}

func (m *mockFeedService) Suggested(_ context.Context, viewerID int64, limit int) ([]types.UserListItem, error) {
	args := m.Called(viewerID, limit)
	v, _ := args.Get(0).([]types.UserListItem)
	return v, args.Error(1)
}

func (m *mockFeedService) Search(_ context.Context, query string, viewerID int64, limit int) ([]types.UserListItem, error) {
	args := m.Called(query, viewerID, limit)
	v, _ := args.Get(0).([]types.UserListItem)
	return v, args.Error(1)
}

func (m *mockFeedService) Profile(_ context.Context, identifier string, viewerID int64) (*types.ProfileView, error) {
	args := m.Called(identifier, viewerID)
	v, _ := args.Get(0).(*types.ProfileView)
	return v, args.Error(1)
}

func (m *mockFeedService) Followers(_ context.Context, identifier string, viewerID int64, limit, offset int) ([]types.UserListItem, error) {
	args := m.Called(identifier, viewerID, limit, offset)
	v, _ := args.Get(0).([]types.UserListItem)
	return v, args.Error(1)
}

func (m *mockFeedService) Following(_ context.Context, identifier string, viewerID int64, limit, offset int) ([]types.UserListItem, error) {
	args := m.Called(identifier, viewerID, limit, offset)
	v, _ := args.Get(0).([]types.UserListItem)
	return v, args.Error(1)
}

type mockPostService struct{ mock.Mock }

func (m *mockPostService) Create(_ context.Context, userID int64, req *types.CreatePostRequest) (*types.PostView, error) {
	args := m.Called(userID, req)
	v, _ := args.Get(0).(*types.PostView)
	return v, args.Error(1)
}

func (m *mockPostService) Update(_ context.Context, postID, userID int64, req *types.UpdatePostRequest) (*types.PostView, error) {
	args := m.Called(postID, userID, req)
	v, _ := args.Get(0).(*types.PostView)
	return v, args.Error(1)
}

func (m *mockPostService) Delete(_ context.Context, postID, userID int64) error {
	return m.Called(postID, userID).Error(0)
}

type mockLikeService struct{ mock.Mock }

func (m *mockLikeService) Like(_ context.Context, userID, postID int64) (*types.LikeState, error) {
	args := m.Called(userID, postID)
	v, _ := args.Get(0).(*types.LikeState)
	return v, args.Error(1)
}

func (m *mockLikeService) Unlike(_ context.Context, userID, postID int64) (*types.LikeState, error) {
	args := m.Called(userID, postID)
	v, _ := args.Get(0).(*types.LikeState)
	return v, args.Error(1)
}

type mockCommentService struct{ mock.Mock }

func (m *mockCommentService) Add(_ context.Context, userID, postID int64, req *types.CreateCommentRequest) (*types.CommentView, error) {
	args := m.Called(userID, postID, req)
	v, _ := args.Get(0).(*types.CommentView)
	return v, args.Error(1)
}

func (m *mockCommentService) List(_ context.Context, postID int64, limit, offset int) ([]types.CommentView, error) {
	args := m.Called(postID, limit, offset)
	v, _ := args.Get(0).([]types.CommentView)
	return v, args.Error(1)
}

func (m *mockCommentService) Delete(_ context.Context, commentID, userID int64) error {
	return m.Called(commentID, userID).Error(0)
}

// memorySessions is an in-process SessionStore.
type memorySessions struct {
	revoked map[string]time.Duration
}

func newMemorySessions() *memorySessions {
	return &memorySessions{revoked: map[string]time.Duration{}}
}

func (s *memorySessions) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.revoked[tokenID] = ttl
	return nil
}

func (s *memorySessions) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}
