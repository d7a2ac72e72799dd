package usecase

import (
	"context"
	"errors"

	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p repository.ProfileUpdate) (user.User, error)
}

type Users struct {
	users repository.UserRepository
	cache Cache
}

func NewUserUsecase(users repository.UserRepository, cache Cache) *Users {
	return &Users{users: users, cache: cache}
}

func (u *Users) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// UpdateProfile writes the matchable attributes. Existing matches are
// not recomputed: generation is lazy, on demand.
func (u *Users) UpdateProfile(ctx context.Context, userID uuid.UUID, p repository.ProfileUpdate) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}

	if err := u.users.UpdateProfile(ctx, userID, p); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	invalidateUserMatches(ctx, u.cache, userID)
	return u.GetProfile(ctx, userID)
}
