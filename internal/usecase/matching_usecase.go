package usecase

import (
	"context"
	"errors"

	"able-match/internal/domain/job"
	"able-match/internal/domain/matching"
	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

// MatchingUsecase exposes the pure score computation for a single
// (user, job) pair. No side effects.
type MatchingUsecase interface {
	ComputeMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.Result, error)
}

type Matching struct {
	users repository.UserRepository
	jobs  repository.JobRepository
}

func NewMatchingUsecase(users repository.UserRepository, jobs repository.JobRepository) *Matching {
	return &Matching{users: users, jobs: jobs}
}

func (u *Matching) ComputeMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.Result, error) {
	if userID == uuid.Nil {
		return matching.Result{}, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return matching.Result{}, ErrUserNotFound
		}
		return matching.Result{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return matching.Result{}, ErrJobNotFound
		}
		return matching.Result{}, ErrInternal
	}

	return matching.Calculate(usr.MatchingProfile(), j.MatchingPosting()), nil
}
