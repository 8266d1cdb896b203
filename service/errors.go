package service

import (
	"Chirp/pkg/errs"
	"Chirp/pkg/validate"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errs.NotFoundError("User not found")
	ErrPostNotFound    = errs.NotFoundError("Post not found")
	ErrCommentNotFound = errs.NotFoundError("Comment not found")
	ErrNotFollowing    = errs.NotFoundError("Not following this user")
	ErrNotLiked        = errs.NotFoundError("Post not liked")

	ErrSelfFollow      = errs.ValidationError("You cannot follow yourself")
	ErrInvalidUsername = errs.ValidationError(validate.UsernameRule)
	ErrInvalidContent  = errs.ValidationError("Content must be between 1 and 500 characters")
	ErrInvalidPassword = errs.ValidationError("Password must be between 8 and 72 characters")
	ErrInvalidEmail    = errs.ValidationError("Invalid email address")
	ErrBioTooLong      = errs.ValidationError("Bio must be at most 300 characters")

	ErrAlreadyFollowing = errs.ConflictError("Already following this user")
	ErrAlreadyLiked     = errs.ConflictError("Post already liked")
	ErrUsernameTaken    = errs.ConflictError("Username is already taken")
	ErrEmailTaken       = errs.ConflictError("Email is already registered")

	ErrInvalidCredentials = errs.UnauthorizedError("Invalid credentials")
	ErrUnauthorized       = errs.UnauthorizedError("Unauthorized")
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
