package usecase

import (
	"context"
	"errors"
	"time"

	"able-match/internal/domain/application"
	"able-match/internal/domain/match"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

// MatchActionUsecase drives the match lifecycle state machine from user
// gestures. Applying also creates the application record for the pair,
// in the same transaction as the status change.
type MatchActionUsecase interface {
	ApplyAction(ctx context.Context, userID, matchID uuid.UUID, action match.Action, accommodationRequest string) (match.Match, error)
}

type MatchAction struct {
	matches repository.MatchRepository
	txs     repository.TxRunner
	cache   Cache
}

func NewMatchActionUsecase(matches repository.MatchRepository, txs repository.TxRunner, cache Cache) *MatchAction {
	return &MatchAction{matches: matches, txs: txs, cache: cache}
}

func (u *MatchAction) ApplyAction(ctx context.Context, userID, matchID uuid.UUID, action match.Action, accommodationRequest string) (match.Match, error) {
	if userID == uuid.Nil {
		return match.Match{}, ErrUnauthorized
	}

	target, ok := action.TargetStatus()
	if !ok {
		return match.Match{}, ErrInvalidAction
	}

	m, err := u.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Match{}, ErrMatchNotFound
		}
		return match.Match{}, ErrInternal
	}

	// Ownership denial is distinct from not-found and mutates nothing.
	if m.UserID != userID {
		return match.Match{}, ErrUnauthorized
	}

	if !m.Status.CanTransition(target) {
		return match.Match{}, ErrInvalidTransition
	}

	err = u.txs.RunMatchApplicationTx(ctx, func(matches repository.MatchRepository, applications repository.ApplicationRepository) error {
		if action == match.ActionApply {
			exists, err := applications.ExistsByUserAndJob(ctx, userID, m.JobID)
			if err != nil {
				return ErrInternal
			}
			if exists {
				return ErrAlreadyApplied
			}

			app := application.Application{
				ID:                   uuid.New(),
				UserID:               userID,
				JobID:                m.JobID,
				Status:               application.StatusPending,
				AccommodationRequest: accommodationRequest,
				AppliedAt:            time.Now().UTC(),
			}
			if err := applications.Insert(ctx, app); err != nil {
				return ErrInternal
			}
		}

		if err := matches.UpdateStatus(ctx, m.ID, target); err != nil {
			return ErrInternal
		}
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrAlreadyApplied):
		return match.Match{}, ErrAlreadyApplied
	default:
		return match.Match{}, ErrInternal
	}
	m.Status = target

	invalidateUserMatches(ctx, u.cache, userID)
	return m, nil
}
