package service

import (
	"Chirp/models"
	"Chirp/types"
	"context"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"
)

// Annotator attaches authors, counts and viewer-relative flags to posts and
// user rows. A viewerID of 0 is an anonymous viewer.
type Annotator struct {
	Users    UserStore
	Follows  FollowStore
	Likes    LikeStore
	Comments CommentStore
}

// Posts builds post views in input order. Posts whose author record is gone
// are dropped.
func (a *Annotator) Posts(ctx context.Context, posts []*models.Post, viewerID int64) ([]types.PostView, error) {
	if len(posts) == 0 {
		return []types.PostView{}, nil
	}

	postIDs := make([]int64, 0, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	seen := make(map[int64]struct{}, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			authorIDs = append(authorIDs, p.UserID)
		}
	}

	var (
		authors       []*models.Users
		likeCounts    map[int64]int64
		commentCounts map[int64]int64
		liked         map[int64]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		authors, err = a.Users.FindByIDs(gctx, authorIDs)
		return err
	})
	g.Go(func() (err error) {
		likeCounts, err = a.Likes.BatchCount(gctx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		commentCounts, err = a.Comments.BatchCount(gctx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		liked, err = a.Likes.LikedSet(gctx, viewerID, postIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Users, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}

	views := make([]types.PostView, 0, len(posts))
	for _, p := range posts {
		author, ok := byID[p.UserID]
		if !ok {
			continue
		}
		v := types.NewPostView(p, author)
		v.LikesCount = likeCounts[p.ID]
		v.CommentsCount = commentCounts[p.ID]
		v.IsLiked = liked[p.ID]
		views = append(views, v)
	}
	return views, nil
}

// Post annotates a single post whose author is already loaded.
func (a *Annotator) Post(ctx context.Context, post *models.Post, author *models.Users, viewerID int64) (*types.PostView, error) {
	v := types.NewPostView(post, author)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		v.LikesCount, err = a.Likes.CountByPost(ctx, post.ID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		v.CommentsCount, err = a.Comments.CountByPost(ctx, post.ID)
		return err
	})
	if viewerID != 0 {
		p.Go(func(ctx context.Context) (err error) {
			v.IsLiked, err = a.Likes.IsLiked(ctx, viewerID, post.ID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return &v, nil
}

// UserItems builds list rows with follower counts and whether viewerID follows
// each user.
func (a *Annotator) UserItems(ctx context.Context, users []*models.Users, viewerID int64) ([]types.UserListItem, error) {
	if len(users) == 0 {
		return []types.UserListItem{}, nil
	}
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	var (
		counts    map[int64]int64
		following map[int64]bool
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		counts, err = a.Follows.BatchFollowerCount(ctx, ids)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		following, err = a.Follows.FollowingSet(ctx, viewerID, ids)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	items := make([]types.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, types.UserListItem{
			UserView:       types.NewUserView(u),
			FollowersCount: counts[u.ID],
			IsFollowing:    u.ID != viewerID && following[u.ID],
		})
	}
	return items, nil
}
