package usecase

import (
	"context"
	"time"

	"able-match/internal/domain/job"
	"able-match/internal/domain/match"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

// MatchListItem is one row of a user's match overview, annotated with
// whether an active application exists for the job.
type MatchListItem struct {
	Match                match.Match
	Job                  job.Job
	HasActiveApplication bool
}

type MatchListUsecase interface {
	ListMatches(ctx context.Context, userID uuid.UUID, statusFilter string) ([]MatchListItem, error)
}

type MatchList struct {
	matches      repository.MatchRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	cache        Cache
	cacheTTL     time.Duration
}

func NewMatchListUsecase(
	matches repository.MatchRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	cache Cache,
	cacheTTL time.Duration,
) *MatchList {
	return &MatchList{matches: matches, jobs: jobs, applications: applications, cache: cache, cacheTTL: cacheTTL}
}

func (u *MatchList) ListMatches(ctx context.Context, userID uuid.UUID, statusFilter string) ([]MatchListItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	status := match.Status(statusFilter)
	if statusFilter != "" && statusFilter != "all" && !status.Valid() {
		return nil, ErrInvalidInput
	}
	if statusFilter == "all" {
		status = ""
	}

	cacheKey := "matches:user:" + userID.String() + ":" + string(status)
	if u.cache != nil {
		var cached []MatchListItem
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	ms, err := u.matches.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]MatchListItem, 0, len(ms))
	for _, m := range ms {
		j, err := u.jobs.GetByID(ctx, m.JobID)
		if err != nil {
			return nil, ErrInternal
		}
		hasApp, err := u.applications.ExistsByUserAndJob(ctx, userID, m.JobID)
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, MatchListItem{Match: m, Job: j, HasActiveApplication: hasApp})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL)
	}
	return out, nil
}
