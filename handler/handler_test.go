package handler

import (
	"Chirp/config"
	"Chirp/middleware"
	"Chirp/pkg/jwt"
	"Chirp/pkg/validate"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validate.Register()
}

type fixture struct {
	conf     *config.Config
	sessions *memorySessions
	users    *mockUserService
	follows  *mockFollowService
	feed     *mockFeedService
	posts    *mockPostService
	likes    *mockLikeService
	comments *mockCommentService
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conf, err := config.Parse([]byte("jwt:\n  secret: handler-test\n"))
	require.NoError(t, err)

	f := &fixture{
		conf:     conf,
		sessions: newMemorySessions(),
		users:    &mockUserService{},
		follows:  &mockFollowService{},
		feed:     &mockFeedService{},
		posts:    &mockPostService{},
		likes:    &mockLikeService{},
		comments: &mockCommentService{},
	}

	r := gin.New()
	api := r.Group("/api")
	(&Auth{Config: conf, UserService: f.users, Sessions: f.sessions, Limiter: middleware.ProvideRateLimiter(conf)}).RegisterRouter(api)
	(&User{Config: conf, Sessions: f.sessions, UserService: f.users, FollowService: f.follows, FeedService: f.feed}).RegisterRouter(api)
	(&Post{Config: conf, Sessions: f.sessions, PostService: f.posts, FeedService: f.feed, LikeService: f.likes, CommentService: f.comments}).RegisterRouter(api)
	(&Comment{Config: conf, Sessions: f.sessions, CommentService: f.comments}).RegisterRouter(api)
	f.router = r

	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.follows.AssertExpectations(t)
		f.feed.AssertExpectations(t)
		f.posts.AssertExpectations(t)
		f.likes.AssertExpectations(t)
		f.comments.AssertExpectations(t)
	})
	return f
}

func (f *fixture) token(t *testing.T, userID int64) string {
	t.Helper()
	token, _, err := jwt.GenerateToken([]byte(f.conf.Jwt.Secret), userID, jwt.TypeSession, time.Hour)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func strPtr(s string) *string { return &s }
