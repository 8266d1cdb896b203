package types

import (
	"Chirp/models"
	"time"
)

type CommentView struct {
	ID        int64     `json:"id,string"`
	PostID    int64     `json:"postId,string"`
	UserID    int64     `json:"userId,string"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Author    UserView  `json:"author"`
}

func NewCommentView(c *models.Comment, author *models.Users) CommentView {
	return CommentView{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Author:    NewUserView(author),
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}
