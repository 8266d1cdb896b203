package service

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/encrypt"
	"Chirp/pkg/snowflake"
	"Chirp/pkg/validate"
	"Chirp/types"
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.Users, error)
	Login(ctx context.Context, identifier, password string) (*models.Users, error)
	GetCurrent(ctx context.Context, userID int64) (*models.Users, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*models.Users, error)
}

type UserService struct {
	Users UserStore
}

func (s *UserService) Signup(ctx context.Context, req *types.SignupRequest) (*models.Users, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	if !validate.Username(username) {
		return nil, ErrInvalidUsername
	}

	taken, err := s.Users.IsEmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}
	taken, err = s.Users.IsUsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	now := time.Now()
	user := &models.Users{
		ID:        snowflake.GenID(),
		Email:     &email,
		Username:  &username,
		FirstName: trimmedOrNil(req.FirstName),
		LastName:  trimmedOrNil(req.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Password != "" {
		if n := len(req.Password); n < 8 || n > 72 {
			return nil, ErrInvalidPassword
		}
		hash, err := encrypt.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, s.signupConflict(ctx, email)
		}
		return nil, err
	}
	return user, nil
}

// signupConflict names the field that lost a concurrent signup race.
func (s *UserService) signupConflict(ctx context.Context, email string) error {
	if taken, err := s.Users.IsEmailTaken(ctx, email); err == nil && taken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login finds the account by email when identifier contains '@' and by
// username otherwise. Accounts with a password must present it.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*models.Users, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		user *models.Users
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.Users.FindByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.Users.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.HasPassword() && !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetCurrent(ctx context.Context, userID int64) (*models.Users, error) {
	user, err := s.Users.FindById(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*models.Users, error) {
	updates := make(map[string]interface{})

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !validate.Username(username) {
			return nil, ErrInvalidUsername
		}
		taken, err := s.Users.IsUsernameTaken(ctx, username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		updates["username"] = username
	}
	if req.FirstName != nil {
		updates["first_name"] = trimmedOrNil(req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = trimmedOrNil(req.LastName)
	}
	if req.Bio != nil {
		bio := trimmedOrNil(req.Bio)
		if bio != nil && utf8.RuneCountInString(*bio) > 300 {
			return nil, ErrBioTooLong
		}
		updates["bio"] = bio
	}
	if req.ProfileImageURL != nil {
		updates["profile_image_url"] = trimmedOrNil(req.ProfileImageURL)
	}

	if err := s.Users.Update(ctx, userID, updates); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return s.GetCurrent(ctx, userID)
}

// trimmedOrNil turns blank optional text into NULL.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
