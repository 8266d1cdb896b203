package types

import (
	"Chirp/models"
	"time"
)

type PostView struct {
	ID            int64     `json:"id,string"`
	UserID        int64     `json:"userId,string"`
	Content       string    `json:"content"`
	ImageURL      *string   `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Author        UserView  `json:"author"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
	IsLiked       bool      `json:"isLiked"`
}

func NewPostView(p *models.Post, author *models.Users) PostView {
	return PostView{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author:    NewUserView(author),
	}
}

type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required,max=500"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
}

type UpdatePostRequest struct {
	Content  string  `json:"content" binding:"required,max=500"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
}

// PageQuery is the limit/offset pair of list endpoints. Zero limit means default.
type PageQuery struct {
	Limit  int `form:"limit" binding:"min=0"`
	Offset int `form:"offset" binding:"min=0"`
}

// LikeState is returned by like and unlike.
type LikeState struct {
	LikesCount int64 `json:"likesCount"`
	IsLiked    bool  `json:"isLiked"`
}
