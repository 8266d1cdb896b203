package service

import (
	"Chirp/config"
	"Chirp/types"
	"context"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

var _ IFeedService = (*FeedService)(nil)

// IFeedService composes the stores into read views. Every read is computed
// from current store contents; viewerID 0 is an anonymous viewer.
type IFeedService interface {
	GlobalFeed(ctx context.Context, viewerID int64, limit, offset int) ([]types.PostView, error)
	PersonalFeed(ctx context.Context, viewerID int64, limit, offset int) ([]types.PostView, error)
	GetPost(ctx context.Context, postID, viewerID int64) (*types.PostView, error)
	AuthorPosts(ctx context.Context, identifier string, viewerID int64, limit, offset int) ([]types.PostView, error)
	Suggested(ctx context.Context, viewerID int64, limit int) ([]types.UserListItem, error)
	Search(ctx context.Context, query string, viewerID int64, limit int) ([]types.UserListItem, error)
	Profile(ctx context.Context, identifier string, viewerID int64) (*types.ProfileView, error)
	Followers(ctx context.Context, identifier string, viewerID int64, limit, offset int) ([]types.UserListItem, error)
	Following(ctx context.Context, identifier string, viewerID int64, limit, offset int) ([]types.UserListItem, error)
}

type FeedService struct {
	Config    *config.Config
	Users     UserStore
	Posts     PostStore
	Follows   FollowStore
	Resolver  *IdentifierResolver
	Annotator *Annotator
}

func (s *FeedService) GlobalFeed(ctx context.Context, viewerID int64, limit, offset int) ([]types.PostView, error) {
	page := NewPage(s.Config.Feed, limit, offset)
	posts, err := s.Posts.List(ctx, nil, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return s.Annotator.Posts(ctx, posts, viewerID)
}

// PersonalFeed lists posts by the accounts viewerID follows and by viewerID
// itself. A viewer who follows nobody sees only their own posts.
func (s *FeedService) PersonalFeed(ctx context.Context, viewerID int64, limit, offset int) ([]types.PostView, error) {
	following, err := s.Follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authors := feedAuthors(viewerID, following)

	page := NewPage(s.Config.Feed, limit, offset)
	posts, err := s.Posts.List(ctx, authors, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return s.Annotator.Posts(ctx, posts, viewerID)
}

// feedAuthors is the following set plus viewerID, without duplicates.
func feedAuthors(viewerID int64, following []int64) []int64 {
	authors := make([]int64, 0, len(following)+1)
	seen := make(map[int64]struct{}, len(following)+1)
	for _, id := range append(following, viewerID) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		authors = append(authors, id)
	}
	return authors
}

// GetPost fails with ErrPostNotFound when the post or its author is missing.
func (s *FeedService) GetPost(ctx context.Context, postID, viewerID int64) (*types.PostView, error) {
	post, err := s.Posts.FindById(ctx, postID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	author, err := s.Users.FindById(ctx, post.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.Annotator.Post(ctx, post, author, viewerID)
}

func (s *FeedService) AuthorPosts(ctx context.Context, identifier string, viewerID int64, limit, offset int) ([]types.PostView, error) {
	user, err := s.Resolver.MustResolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	page := NewPage(s.Config.Feed, limit, offset)
	posts, err := s.Posts.FindByUserID(ctx, user.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return s.Annotator.Posts(ctx, posts, viewerID)
}

// Suggested lists the newest accounts viewerID neither is nor follows.
func (s *FeedService) Suggested(ctx context.Context, viewerID int64, limit int) ([]types.UserListItem, error) {
	if limit <= 0 {
		limit = defaultSuggestedLimit
	}
	limit = min(limit, s.Config.Feed.MaxLimit)

	following, err := s.Follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.ListExcluding(ctx, feedAuthors(viewerID, following), limit)
	if err != nil {
		return nil, err
	}
	return s.Annotator.UserItems(ctx, users, viewerID)
}

// Search matches username, first or last name. A blank query returns an empty
// list without touching the store.
func (s *FeedService) Search(ctx context.Context, query string, viewerID int64, limit int) ([]types.UserListItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.UserListItem{}, nil
	}
	users, err := s.Users.Search(ctx, query, viewerID, SearchLimit(limit))
	if err != nil {
		return nil, err
	}
	return s.Annotator.UserItems(ctx, users, viewerID)
}

// Profile resolves identifier and attaches counts. IsFollowing is false for
// the owner and for anonymous viewers.
func (s *FeedService) Profile(ctx context.Context, identifier string, viewerID int64) (*types.ProfileView, error) {
	user, err := s.Resolver.MustResolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	view := &types.ProfileView{UserView: types.NewUserView(user)}
	if viewerID == user.ID {
		view.UserView = types.NewSelfView(user)
	}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		view.FollowersCount, err = s.Follows.GetFollowerCount(ctx, user.ID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		view.FollowingCount, err = s.Follows.GetFollowingCount(ctx, user.ID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		view.PostsCount, err = s.Posts.CountByUserID(ctx, user.ID)
		return err
	})
	if viewerID != 0 && viewerID != user.ID {
		p.Go(func(ctx context.Context) (err error) {
			view.IsFollowing, err = s.Follows.IsFollowing(ctx, viewerID, user.ID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *FeedService) Followers(ctx context.Context, identifier string, viewerID int64, limit, offset int) ([]types.UserListItem, error) {
	user, err := s.Resolver.MustResolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	page := NewPage(s.Config.Feed, limit, offset)
	users, err := s.Follows.ListFollowers(ctx, user.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return s.Annotator.UserItems(ctx, users, viewerID)
}

func (s *FeedService) Following(ctx context.Context, identifier string, viewerID int64, limit, offset int) ([]types.UserListItem, error) {
	user, err := s.Resolver.MustResolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	page := NewPage(s.Config.Feed, limit, offset)
	users, err := s.Follows.ListFollowing(ctx, user.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return s.Annotator.UserItems(ctx, users, viewerID)
}
