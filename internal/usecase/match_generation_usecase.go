package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"able-match/internal/domain/match"
	"able-match/internal/domain/matching"
	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

const generationPageSize = 100

// MatchGenerationUsecase evaluates every not-yet-evaluated (user, job)
// pair against the catalog and persists the ones clearing the admission
// threshold. Idempotent per pair: re-running for the same user creates
// nothing new unless the catalog or the user's applications changed.
type MatchGenerationUsecase interface {
	GenerateMatches(ctx context.Context, userID uuid.UUID) ([]match.Match, error)
}

type MatchGeneration struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	matches      repository.MatchRepository
	applications repository.ApplicationRepository

	cache    Cache
	notifier MatchNotifier
}

func NewMatchGenerationUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	applications repository.ApplicationRepository,
	cache Cache,
	notifier MatchNotifier,
) *MatchGeneration {
	return &MatchGeneration{
		users:        users,
		jobs:         jobs,
		matches:      matches,
		applications: applications,
		cache:        cache,
		notifier:     notifier,
	}
}

func (u *MatchGeneration) GenerateMatches(ctx context.Context, userID uuid.UUID) ([]match.Match, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	if !usr.IsJobSeeker() {
		return nil, ErrNotJobSeeker
	}

	profile := usr.MatchingProfile()
	created := make([]match.Match, 0)

	for offset := 0; ; offset += generationPageSize {
		page, err := u.jobs.ListPage(ctx, generationPageSize, offset)
		if err != nil {
			return nil, ErrInternal
		}
		if len(page) == 0 {
			break
		}

		for _, j := range page {
			applied, err := u.applications.ExistsByUserAndJob(ctx, userID, j.ID)
			if err != nil {
				return nil, ErrInternal
			}
			if applied {
				continue
			}

			exists, err := u.matches.ExistsByUserAndJob(ctx, userID, j.ID)
			if err != nil {
				return nil, ErrInternal
			}
			if exists {
				continue
			}

			res := matching.Calculate(profile, j.MatchingPosting())
			if res.Overall < matching.MinMatchScore {
				continue
			}

			details, err := json.Marshal(res.Breakdown)
			if err != nil {
				return nil, ErrInternal
			}

			m := match.Match{
				ID:                 uuid.New(),
				UserID:             userID,
				JobID:              j.ID,
				MatchScore:         res.Overall,
				SkillsMatch:        res.Breakdown.SkillsMatch,
				ExperienceMatch:    res.Breakdown.ExperienceMatch,
				LocationMatch:      res.Breakdown.LocationMatch,
				AccessibilityMatch: res.Breakdown.AccessibilityMatch,
				SalaryMatch:        res.Breakdown.SalaryMatch,
				Details:            string(details),
				Status:             match.StatusPending,
				CreatedAt:          time.Now().UTC(),
			}

			inserted, err := u.matches.Insert(ctx, m)
			if err != nil {
				return nil, ErrInternal
			}
			if !inserted {
				// A concurrent run won the uniqueness race; skip silently.
				continue
			}
			created = append(created, m)
		}

		if len(page) < generationPageSize {
			break
		}
	}

	if len(created) > 0 {
		invalidateUserMatches(ctx, u.cache, userID)
		if u.notifier != nil {
			u.notifier.MatchesGenerated(userID, len(created))
		}
	}

	return created, nil
}

func invalidateUserMatches(ctx context.Context, cache Cache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	_ = cache.DeleteByPattern(ctx, "matches:user:"+userID.String()+":*")
}
