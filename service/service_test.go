package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/database"
	"Chirp/types"
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*types.ActivityEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event *types.ActivityEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	db       *gorm.DB
	pub      *recordingPublisher
	users    *UserService
	follows  *FollowService
	posts    *PostService
	likes    *LikeService
	comments *CommentService
	feed     *FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(&config.Database{Driver: config.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg, err := config.Parse(nil)
	require.NoError(t, err)

	users := dao.NewUsers(db)
	posts := dao.NewPostDAO(db)
	follows := dao.NewFollowDAO(db)
	likes := dao.NewLikeDAO(db)
	comments := dao.NewComment(db)
	pub := &recordingPublisher{}

	annotator := &Annotator{Users: users, Follows: follows, Likes: likes, Comments: comments}
	return &testEnv{
		db:       db,
		pub:      pub,
		users:    &UserService{Users: users},
		follows:  &FollowService{Follows: follows, Users: users, Publisher: pub},
		posts:    &PostService{Posts: posts, Users: users, Annotator: annotator},
		likes:    &LikeService{Likes: likes, Posts: posts, Publisher: pub},
		comments: &CommentService{Config: cfg, Comments: comments, Posts: posts, Users: users, Publisher: pub},
		feed: &FeedService{
			Config:    cfg,
			Users:     users,
			Posts:     posts,
			Follows:   follows,
			Resolver:  &IdentifierResolver{Users: users},
			Annotator: annotator,
		},
	}
}

func (e *testEnv) signup(t *testing.T, username string) *models.Users {
	t.Helper()
	u, err := e.users.Signup(context.Background(), &types.SignupRequest{
		Email:    username + "@example.com",
		Username: username,
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) post(t *testing.T, userID int64, content string) *types.PostView {
	t.Helper()
	p, err := e.posts.Create(context.Background(), userID, &types.CreatePostRequest{Content: content})
	require.NoError(t, err)
	return p
}

func postContents(views []types.PostView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Content)
	}
	return out
}

func strPtr(s string) *string { return &s }

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
