package service

import (
	"Chirp/models"
	"context"
	"strconv"
)

// Resolution tells how an identifier matched a user.
type Resolution uint8

const (
	NotResolved Resolution = iota
	ResolvedByUsername
	ResolvedByID
)

func (r Resolution) String() string {
	switch r {
	case ResolvedByUsername:
		return "username"
	case ResolvedByID:
		return "id"
	default:
		return "not_resolved"
	}
}

type ResolvedUser struct {
	User *models.Users
	By   Resolution
}

func (r ResolvedUser) Found() bool {
	return r.By != NotResolved
}

// IdentifierResolver maps a path identifier to a user, trying the username
// first and the numeric id second.
type IdentifierResolver struct {
	Users UserStore
}

func (r *IdentifierResolver) Resolve(ctx context.Context, identifier string) (ResolvedUser, error) {
	if identifier == "" {
		return ResolvedUser{}, nil
	}

	user, err := r.Users.FindByUsername(ctx, identifier)
	if err == nil {
		return ResolvedUser{User: user, By: ResolvedByUsername}, nil
	}
	if !isNotFound(err) {
		return ResolvedUser{}, err
	}

	id, perr := strconv.ParseInt(identifier, 10, 64)
	if perr != nil || id <= 0 {
		return ResolvedUser{}, nil
	}
	user, err = r.Users.FindById(ctx, id)
	if err == nil {
		return ResolvedUser{User: user, By: ResolvedByID}, nil
	}
	if !isNotFound(err) {
		return ResolvedUser{}, err
	}
	return ResolvedUser{}, nil
}

// MustResolve is Resolve with NotResolved reported as ErrUserNotFound.
func (r *IdentifierResolver) MustResolve(ctx context.Context, identifier string) (*models.Users, error) {
	res, err := r.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !res.Found() {
		return nil, ErrUserNotFound
	}
	return res.User, nil
}
