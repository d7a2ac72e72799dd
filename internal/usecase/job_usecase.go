package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"able-match/internal/domain/job"
	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title                 string
	Company               string
	Description           string
	Requirements          string
	RequiredSkills        string
	ExperienceRequired    string
	Location              string
	WorkType              string
	AccessibilityFeatures string
	SalaryRange           string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, posterID uuid.UUID, in CreateJobInput) (job.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error)
}

type Jobs struct {
	users repository.UserRepository
	jobs  repository.JobRepository
}

func NewJobUsecase(users repository.UserRepository, jobs repository.JobRepository) *Jobs {
	return &Jobs{users: users, jobs: jobs}
}

func (u *Jobs) CreateJob(ctx context.Context, posterID uuid.UUID, in CreateJobInput) (job.Job, error) {
	if posterID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}

	poster, err := u.users.GetByID(ctx, posterID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return job.Job{}, ErrUserNotFound
		}
		return job.Job{}, ErrInternal
	}
	if poster.UserType != user.TypeEmployer {
		return job.Job{}, ErrUnauthorized
	}

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.Description) == "" {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:                    uuid.New(),
		Title:                 strings.TrimSpace(in.Title),
		Company:               strings.TrimSpace(in.Company),
		Description:           in.Description,
		Requirements:          in.Requirements,
		RequiredSkills:        in.RequiredSkills,
		ExperienceRequired:    strings.TrimSpace(in.ExperienceRequired),
		Location:              strings.TrimSpace(in.Location),
		WorkType:              strings.TrimSpace(in.WorkType),
		AccessibilityFeatures: in.AccessibilityFeatures,
		SalaryRange:           strings.TrimSpace(in.SalaryRange),
		PostedBy:              posterID,
		CreatedAt:             time.Now().UTC(),
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 || limit > 50 {
		limit = 20
	}
	out, err := u.jobs.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
