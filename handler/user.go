package handler

import (
	"Chirp/config"
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/service"
	"Chirp/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config        *config.Config
	Sessions      SessionStore
	UserService   service.IUserService
	FollowService service.IFollowService
	FeedService   service.IFeedService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	auth := authorize(u.Config, u.Sessions)
	viewer := optional(u.Config, u.Sessions)

	g := r.Group("/users")
	g.GET("/suggested", auth, context.Wrap(u.Suggested))
	g.GET("/search", viewer, context.Wrap(u.Search))
	g.PUT("/me", auth, context.Wrap(u.UpdateMe))
	g.GET("/:identifier", viewer, context.Wrap(u.Profile))
	g.GET("/:identifier/posts", viewer, context.Wrap(u.Posts))
	g.GET("/:identifier/followers", viewer, context.Wrap(u.Followers))
	g.GET("/:identifier/following", viewer, context.Wrap(u.Following))
	g.POST("/:identifier/follow", auth, context.Wrap(u.Follow))
	g.DELETE("/:identifier/follow", auth, context.Wrap(u.Unfollow))
}

func (u *User) Suggested(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	users, err := u.FeedService.Suggested(c.Request.Context(), uid, q.Limit)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Search(c *gin.Context) error {
	var q types.SearchQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	viewerID, _ := context.GetViewerID(c)

	users, err := u.FeedService.Search(c.Request.Context(), q.Q, viewerID, q.Limit)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) UpdateMe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := u.UserService.UpdateProfile(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.NewSelfView(user))
	return nil
}

// Profile resolves the path segment as a username first, then as an id.
func (u *User) Profile(c *gin.Context) error {
	viewerID, _ := context.GetViewerID(c)
	profile, err := u.FeedService.Profile(c.Request.Context(), c.Param("identifier"), viewerID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) Posts(c *gin.Context) error {
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	viewerID, _ := context.GetViewerID(c)

	posts, err := u.FeedService.AuthorPosts(c.Request.Context(), c.Param("identifier"), viewerID, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (u *User) Followers(c *gin.Context) error {
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	viewerID, _ := context.GetViewerID(c)

	users, err := u.FeedService.Followers(c.Request.Context(), c.Param("identifier"), viewerID, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Following(c *gin.Context) error {
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	viewerID, _ := context.GetViewerID(c)

	users, err := u.FeedService.Following(c.Request.Context(), c.Param("identifier"), viewerID, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Follow(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	targetID, err := idParam(c, "identifier", service.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := u.FollowService.Follow(c.Request.Context(), uid, targetID); err != nil {
		return err
	}
	response.OK(c, "Followed successfully")
	return nil
}

func (u *User) Unfollow(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	targetID, err := idParam(c, "identifier", service.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := u.FollowService.Unfollow(c.Request.Context(), uid, targetID); err != nil {
		return err
	}
	response.OK(c, "Unfollowed successfully")
	return nil
}
