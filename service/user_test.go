package service

import (
	"Chirp/pkg/errs"
	"Chirp/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Signup(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	u, err := e.users.Signup(ctx, &types.SignupRequest{
		Email:     " Alice@Example.com ",
		Username:  "alice",
		FirstName: strPtr(" Alice "),
		LastName:  strPtr("  "),
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice@example.com", *u.Email)
	assert.Equal(t, "Alice", *u.FirstName)
	assert.Nil(t, u.LastName)
	assert.False(t, u.HasPassword())

	_, err = e.users.Signup(ctx, &types.SignupRequest{Email: "alice@example.com", Username: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = e.users.Signup(ctx, &types.SignupRequest{Email: "new@example.com", Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, errs.Conflict, errs.KindOf(err))
}

func TestUserService_SignupValidation(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  types.SignupRequest
		want error
	}{
		{"bad email", types.SignupRequest{Email: "nope", Username: "alice"}, ErrInvalidEmail},
		{"short username", types.SignupRequest{Email: "a@example.com", Username: "al"}, ErrInvalidUsername},
		{"bad username", types.SignupRequest{Email: "a@example.com", Username: "al ice"}, ErrInvalidUsername},
		{"short password", types.SignupRequest{Email: "a@example.com", Username: "alice", Password: "short"}, ErrInvalidPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.users.Signup(ctx, &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	withPassword, err := e.users.Signup(ctx, &types.SignupRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)
	passwordless := e.signup(t, "bob")

	u, err := e.users.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, withPassword.ID, u.ID)

	u, err = e.users.Login(ctx, "ALICE@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, withPassword.ID, u.ID)

	_, err = e.users.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = e.users.Login(ctx, "nobody", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u, err = e.users.Login(ctx, " bob ", "")
	require.NoError(t, err)
	assert.Equal(t, passwordless.ID, u.ID)
}

func TestUserService_UpdateProfile(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	e.signup(t, "bob")

	u, err := e.users.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{
		Bio:             strPtr("hi there"),
		ProfileImageURL: strPtr("https://example.com/a.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", *u.Bio)
	assert.Equal(t, "alice", *u.Username)

	_, err = e.users.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{Username: strPtr("bob")})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	u, err = e.users.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{Username: strPtr("alice2"), Bio: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "alice2", *u.Username)
	assert.Nil(t, u.Bio)

	// keeping one's own username is not a conflict
	_, err = e.users.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{Username: strPtr("alice2")})
	assert.NoError(t, err)

	_, err = e.users.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{Username: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestUserService_GetCurrentMissingIsUnauthorized(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.users.GetCurrent(context.Background(), 1)
	assert.Equal(t, errs.Unauthorized, errs.KindOf(err))
}

func TestIdentifierResolver(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	r := e.feed.Resolver

	res, err := r.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, ResolvedByUsername, res.By)
	assert.Equal(t, alice.ID, res.User.ID)

	res, err = r.Resolve(ctx, formatID(alice.ID))
	require.NoError(t, err)
	assert.Equal(t, ResolvedByID, res.By)

	for _, id := range []string{"", "ghost", "-1", "123"} {
		res, err = r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.False(t, res.Found(), id)
	}
}
