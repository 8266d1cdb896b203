package service

import (
	"Chirp/pkg/errs"
	"Chirp/types"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreateValidation(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")

	p, err := e.posts.Create(ctx, alice.ID, &types.CreatePostRequest{Content: "  hello  ", ImageURL: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Content)
	assert.Nil(t, p.ImageURL)
	assert.Equal(t, alice.ID, p.Author.ID)

	for _, content := range []string{"", "   ", strings.Repeat("x", 501)} {
		_, err := e.posts.Create(ctx, alice.ID, &types.CreatePostRequest{Content: content})
		assert.ErrorIs(t, err, ErrInvalidContent)
	}

	// 500 multi-byte characters fit
	_, err = e.posts.Create(ctx, alice.ID, &types.CreatePostRequest{Content: strings.Repeat("é", 500)})
	assert.NoError(t, err)
}

func TestPostService_OwnershipGate(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	bob := e.signup(t, "bob")
	p := e.post(t, alice.ID, "hello world")

	_, err := e.posts.Update(ctx, p.ID, bob.ID, &types.UpdatePostRequest{Content: "hijacked"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))

	err = e.posts.Delete(ctx, p.ID, bob.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	got, err := e.feed.GetPost(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Content)

	updated, err := e.posts.Update(ctx, p.ID, alice.ID, &types.UpdatePostRequest{
		Content:  "edited",
		ImageURL: strPtr("https://example.com/x.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "https://example.com/x.png", *updated.ImageURL)

	require.NoError(t, e.posts.Delete(ctx, p.ID, alice.ID))
	_, err = e.feed.GetPost(ctx, p.ID, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikeService_Toggle(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	bob := e.signup(t, "bob")
	p := e.post(t, alice.ID, "hello world")

	state, err := e.likes.Like(ctx, bob.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, &types.LikeState{LikesCount: 1, IsLiked: true}, state)

	_, err = e.likes.Like(ctx, bob.ID, p.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Equal(t, "Post already liked", err.Error())

	got, err := e.feed.GetPost(ctx, p.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikesCount)

	state, err = e.likes.Unlike(ctx, bob.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, &types.LikeState{LikesCount: 0, IsLiked: false}, state)

	_, err = e.likes.Unlike(ctx, bob.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotLiked)

	_, err = e.likes.Like(ctx, bob.ID, 777)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.Equal(t, []string{types.ActivityLike}, e.pub.kinds())
}

func TestCommentService(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	bob := e.signup(t, "bob")
	p := e.post(t, alice.ID, "hello world")

	first, err := e.comments.Add(ctx, bob.ID, p.ID, &types.CreateCommentRequest{Content: "first"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, first.Author.ID)
	_, err = e.comments.Add(ctx, alice.ID, p.ID, &types.CreateCommentRequest{Content: "second"})
	require.NoError(t, err)

	_, err = e.comments.Add(ctx, bob.ID, 777, &types.CreateCommentRequest{Content: "lost"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = e.comments.Add(ctx, bob.ID, p.ID, &types.CreateCommentRequest{Content: " "})
	assert.ErrorIs(t, err, ErrInvalidContent)

	list, err := e.comments.List(ctx, p.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)
	assert.Equal(t, "first", list[1].Content)

	got, err := e.feed.GetPost(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.CommentsCount)

	// non-owner delete leaves the comment in place
	assert.ErrorIs(t, e.comments.Delete(ctx, first.ID, alice.ID), ErrCommentNotFound)
	list, err = e.comments.List(ctx, p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, e.comments.Delete(ctx, first.ID, bob.ID))
	list, err = e.comments.List(ctx, p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = e.comments.List(ctx, 777, 0, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.Equal(t, []string{types.ActivityComment, types.ActivityComment}, e.pub.kinds())
}

func TestCommentService_ListWholeThread(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	p := e.post(t, alice.ID, "busy thread")

	const n = 30
	for i := 0; i < n; i++ {
		_, err := e.comments.Add(ctx, alice.ID, p.ID, &types.CreateCommentRequest{Content: "reply " + strconv.Itoa(i)})
		require.NoError(t, err)
	}

	got, err := e.feed.GetPost(ctx, p.ID, 0)
	require.NoError(t, err)
	list, err := e.comments.List(ctx, p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, n)
	assert.Equal(t, got.CommentsCount, int64(len(list)))
	assert.Equal(t, "reply 29", list[0].Content)

	// explicit paging still applies
	page, err := e.comments.List(ctx, p.ID, 10, 25)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	page, err = e.comments.List(ctx, p.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page, 20)
}
