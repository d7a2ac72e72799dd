package usecase

import (
	"context"
	"errors"
	"time"

	"able-match/internal/domain/application"
	"able-match/internal/domain/match"
	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

// ApplicationUsecase covers direct applications from a job page and
// withdrawal. Withdrawal of a pending application moves the pair's
// match from applied back to liked. The application row and the match
// status change land in one transaction in both directions.
type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID, accommodationRequest string) (application.Application, error)
	Withdraw(ctx context.Context, userID, applicationID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
}

type Applications struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	txs          repository.TxRunner
	cache        Cache
}

func NewApplicationUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	txs repository.TxRunner,
	cache Cache,
) *Applications {
	return &Applications{users: users, jobs: jobs, applications: applications, txs: txs, cache: cache}
}

func (u *Applications) Apply(ctx context.Context, userID, jobID uuid.UUID, accommodationRequest string) (application.Application, error) {
	if userID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return application.Application{}, ErrUserNotFound
		}
		return application.Application{}, ErrInternal
	}
	if !usr.IsJobSeeker() {
		return application.Application{}, ErrNotJobSeeker
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !exists {
		return application.Application{}, ErrJobNotFound
	}

	app := application.Application{
		ID:                   uuid.New(),
		UserID:               userID,
		JobID:                jobID,
		Status:               application.StatusPending,
		AccommodationRequest: accommodationRequest,
		AppliedAt:            time.Now().UTC(),
	}

	err = u.txs.RunMatchApplicationTx(ctx, func(matches repository.MatchRepository, applications repository.ApplicationRepository) error {
		already, err := applications.ExistsByUserAndJob(ctx, userID, jobID)
		if err != nil {
			return ErrInternal
		}
		if already {
			return ErrAlreadyApplied
		}

		if err := applications.Insert(ctx, app); err != nil {
			return ErrInternal
		}

		// Keep the pair's match in step with the application.
		m, err := matches.GetByUserAndJob(ctx, userID, jobID)
		if err != nil {
			if errors.Is(err, match.ErrNotFound) {
				return nil
			}
			return ErrInternal
		}
		if m.Status.CanTransition(match.StatusApplied) {
			if err := matches.UpdateStatus(ctx, m.ID, match.StatusApplied); err != nil {
				return ErrInternal
			}
		}
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrAlreadyApplied):
		return application.Application{}, ErrAlreadyApplied
	default:
		return application.Application{}, ErrInternal
	}

	invalidateUserMatches(ctx, u.cache, userID)
	return app, nil
}

func (u *Applications) Withdraw(ctx context.Context, userID, applicationID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}

	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}

	if app.UserID != userID {
		return ErrUnauthorized
	}
	if !app.Withdrawable() {
		return ErrApplicationNotPending
	}

	err = u.txs.RunMatchApplicationTx(ctx, func(matches repository.MatchRepository, applications repository.ApplicationRepository) error {
		m, err := matches.GetByUserAndJob(ctx, userID, app.JobID)
		if err == nil && m.Status == match.StatusApplied {
			if err := matches.UpdateStatus(ctx, m.ID, match.StatusLiked); err != nil {
				return ErrInternal
			}
		} else if err != nil && !errors.Is(err, match.ErrNotFound) {
			return ErrInternal
		}

		if err := applications.Delete(ctx, applicationID); err != nil {
			return ErrInternal
		}
		return nil
	})
	if err != nil {
		return ErrInternal
	}

	invalidateUserMatches(ctx, u.cache, userID)
	return nil
}

func (u *Applications) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
