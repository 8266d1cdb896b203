package handler

import (
	"Chirp/config"
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/service"
	"Chirp/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config         *config.Config
	Sessions       SessionStore
	PostService    service.IPostService
	FeedService    service.IFeedService
	LikeService    service.ILikeService
	CommentService service.ICommentService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	auth := authorize(p.Config, p.Sessions)
	viewer := optional(p.Config, p.Sessions)

	g := r.Group("/posts")
	g.POST("", auth, context.Wrap(p.Create))
	g.GET("", viewer, context.Wrap(p.Global))
	g.GET("/feed", auth, context.Wrap(p.Feed))
	g.GET("/:id", viewer, context.Wrap(p.Get))
	g.PUT("/:id", auth, context.Wrap(p.Update))
	g.DELETE("/:id", auth, context.Wrap(p.Delete))
	g.POST("/:id/like", auth, context.Wrap(p.Like))
	g.DELETE("/:id/like", auth, context.Wrap(p.Unlike))
	g.POST("/:id/comments", auth, context.Wrap(p.AddComment))
	g.GET("/:id/comments", viewer, context.Wrap(p.Comments))
}

func (p *Post) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreatePostRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	post, err := p.PostService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, post)
	return nil
}

// Global lists every post, newest first.
func (p *Post) Global(c *gin.Context) error {
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	viewerID, _ := context.GetViewerID(c)

	posts, err := p.FeedService.GlobalFeed(c.Request.Context(), viewerID, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

// Feed lists posts from followed accounts and the viewer.
func (p *Post) Feed(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	posts, err := p.FeedService.PersonalFeed(c.Request.Context(), uid, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (p *Post) Get(c *gin.Context) error {
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}
	viewerID, _ := context.GetViewerID(c)

	post, err := p.FeedService.GetPost(c.Request.Context(), postID, viewerID)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (p *Post) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}
	var req types.UpdatePostRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	post, err := p.PostService.Update(c.Request.Context(), postID, uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (p *Post) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}

	if err := p.PostService.Delete(c.Request.Context(), postID, uid); err != nil {
		return err
	}
	response.OK(c, "Post deleted successfully")
	return nil
}

func (p *Post) Like(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}

	state, err := p.LikeService.Like(c.Request.Context(), uid, postID)
	if err != nil {
		return err
	}
	response.Success(c, state)
	return nil
}

func (p *Post) Unlike(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}

	state, err := p.LikeService.Unlike(c.Request.Context(), uid, postID)
	if err != nil {
		return err
	}
	response.Success(c, state)
	return nil
}

func (p *Post) AddComment(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	comment, err := p.CommentService.Add(c.Request.Context(), uid, postID, &req)
	if err != nil {
		return err
	}
	response.Created(c, comment)
	return nil
}

func (p *Post) Comments(c *gin.Context) error {
	postID, err := idParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	comments, err := p.CommentService.List(c.Request.Context(), postID, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}
