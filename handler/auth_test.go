package handler

import (
	"Chirp/models"
	"Chirp/pkg/jwt"
	"Chirp/service"
	"Chirp/types"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUser(id int64, username string) *models.Users {
	now := time.Now()
	return &models.Users{
		ID:        id,
		Email:     strPtr(username + "@example.com"),
		Username:  strPtr(username),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAuth_SignupStartsSession(t *testing.T) {
	f := newFixture(t)
	f.users.On("Signup", mock.MatchedBy(func(req *types.SignupRequest) bool {
		return req.Email == "alice@example.com" && req.Username == "alice"
	})).Return(testUser(1, "alice"), nil)

	w := f.do(http.MethodPost, "/api/auth/signup", `{"email":"alice@example.com","username":"alice"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "chirp_session=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	var body types.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.User.ID)
	assert.Equal(t, "alice@example.com", *body.User.Email)
	assert.True(t, strings.Contains(w.Body.String(), `"id":"1"`))

	claims, err := jwt.ParseToken([]byte(f.conf.Jwt.Secret), jwt.TypeSession, body.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestAuth_SignupValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		body string
		want string
	}{
		{`{"username":"alice"}`, "email is required"},
		{`{"email":"nope","username":"alice"}`, "Invalid email address"},
		{`{"email":"a@example.com","username":"a!"}`, "Username must be 3-30 characters and contain only letters, numbers, and underscores"},
		{`{"email":"a@example.com","username":"alice","password":"short"}`, "password must be at least 8 characters"},
		{`not json`, "Invalid request body"},
	}
	for _, tt := range tests {
		w := f.do(http.MethodPost, "/api/auth/signup", tt.body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.body)
		assert.Equal(t, tt.want, message(t, w), tt.body)
	}
}

func TestAuth_SignupConflict(t *testing.T) {
	f := newFixture(t)
	f.users.On("Signup", mock.Anything).Return(nil, service.ErrUsernameTaken)

	w := f.do(http.MethodPost, "/api/auth/signup", `{"email":"b@example.com","username":"alice"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username is already taken", message(t, w))
}

func TestAuth_Login(t *testing.T) {
	f := newFixture(t)
	f.users.On("Login", "alice", "secret123").Return(testUser(1, "alice"), nil)
	f.users.On("Login", "alice", "wrong").Return(nil, service.ErrInvalidCredentials)

	w := f.do(http.MethodPost, "/api/auth/login", `{"identifier":"alice","password":"secret123"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "chirp_session=")

	w = f.do(http.MethodPost, "/api/auth/login", `{"identifier":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", message(t, w))
}

func TestAuth_LogoutRevokesSession(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, 1)
	f.users.On("GetCurrent", int64(1)).Return(testUser(1, "alice"), nil).Once()

	w := f.do(http.MethodGet, "/api/auth/user", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	w = f.do(http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", message(t, w))
	assert.Len(t, f.sessions.revoked, 1)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")

	w = f.do(http.MethodGet, "/api/auth/user", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_LogoutWithoutSession(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.sessions.revoked)
}

func TestAuth_UserRequiresSession(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/api/auth/user", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", message(t, w))
}
