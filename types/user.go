package types

import (
	"Chirp/models"
	"time"
)

// UserView is the public projection of a user. Email is only filled for the
// account owner.
type UserView struct {
	ID              int64     `json:"id,string"`
	Email           *string   `json:"email,omitempty"`
	Username        *string   `json:"username"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	Bio             *string   `json:"bio"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewUserView projects u for other viewers.
func NewUserView(u *models.Users) UserView {
	return UserView{
		ID:              u.ID,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// NewSelfView projects u for its owner.
func NewSelfView(u *models.Users) UserView {
	v := NewUserView(u)
	v.Email = u.Email
	return v
}

// UserListItem is a row of search, suggestion and follower lists.
type UserListItem struct {
	UserView
	FollowersCount int64 `json:"followersCount"`
	IsFollowing    bool  `json:"isFollowing"`
}

type ProfileView struct {
	UserView
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
	PostsCount     int64 `json:"postsCount"`
	IsFollowing    bool  `json:"isFollowing"`
}

// UpdateProfileRequest edits the caller's own profile. Absent fields are kept,
// empty strings clear optional fields.
type UpdateProfileRequest struct {
	Username        *string `json:"username" binding:"omitempty,username"`
	FirstName       *string `json:"firstName" binding:"omitempty,max=100"`
	LastName        *string `json:"lastName" binding:"omitempty,max=100"`
	Bio             *string `json:"bio" binding:"omitempty,max=300"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,url"`
}

type SearchQuery struct {
	Q     string `form:"q"`
	Limit int    `form:"limit"`
}
