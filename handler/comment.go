package handler

import (
	"Chirp/config"
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/service"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	Sessions       SessionStore
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	g := r.Group("/comments")
	g.DELETE("/:id", authorize(h.Config, h.Sessions), context.Wrap(h.Delete))
}

// Delete removes the caller's own comment. Other people's comments are 404.
func (h *Comment) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := idParam(c, "id", service.ErrCommentNotFound)
	if err != nil {
		return err
	}

	if err := h.CommentService.Delete(c.Request.Context(), commentID, uid); err != nil {
		return err
	}
	response.OK(c, "Comment deleted successfully")
	return nil
}
