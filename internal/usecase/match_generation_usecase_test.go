package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"able-match/internal/domain/application"
	"able-match/internal/domain/match"
	"able-match/internal/domain/user"

	"github.com/google/uuid"
)

func TestGenerateMatches_CreatesPendingRecordsAboveThreshold(t *testing.T) {
	seeker := seekerWithProfile()
	good := accessibleWebJob()
	poor := unrelatedJob()

	users := newFakeUserRepo(seeker)
	jobRepo := &fakeJobRepo{}
	jobRepo.jobs = append(jobRepo.jobs, good, poor)
	matches := newFakeMatchRepo()
	apps := newFakeApplicationRepo()
	notifier := &recordingNotifier{}

	uc := NewMatchGenerationUsecase(users, jobRepo, matches, apps, nil, notifier)

	created, err := uc.GenerateMatches(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 match, got %d", len(created))
	}

	m := created[0]
	if m.JobID != good.ID {
		t.Errorf("expected match for the compatible job")
	}
	if m.Status != match.StatusPending {
		t.Errorf("expected pending status, got %s", m.Status)
	}
	if m.MatchScore < 30.0 {
		t.Errorf("score %v below admission threshold", m.MatchScore)
	}
	if m.Details == "" {
		t.Error("expected serialized breakdown details")
	}

	if notifier.calls != 1 || notifier.userID != seeker.ID || notifier.count != 1 {
		t.Errorf("notifier not invoked as expected: %+v", notifier)
	}
}

func TestGenerateMatches_Idempotent(t *testing.T) {
	seeker := seekerWithProfile()
	users := newFakeUserRepo(seeker)
	jobRepo := &fakeJobRepo{}
	jobRepo.jobs = append(jobRepo.jobs, accessibleWebJob())
	matches := newFakeMatchRepo()
	apps := newFakeApplicationRepo()

	uc := NewMatchGenerationUsecase(users, jobRepo, matches, apps, nil, nil)

	first, err := uc.GenerateMatches(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first run: expected 1 match, got %d", len(first))
	}

	second, err := uc.GenerateMatches(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run: expected no new matches, got %d", len(second))
	}
}

func TestGenerateMatches_SkipsAppliedJobs(t *testing.T) {
	seeker := seekerWithProfile()
	j := accessibleWebJob()

	users := newFakeUserRepo(seeker)
	jobRepo := &fakeJobRepo{}
	jobRepo.jobs = append(jobRepo.jobs, j)
	matches := newFakeMatchRepo()
	apps := newFakeApplicationRepo()
	_ = apps.Insert(context.Background(), application.Application{
		ID:        uuid.New(),
		UserID:    seeker.ID,
		JobID:     j.ID,
		Status:    application.StatusPending,
		AppliedAt: time.Now().UTC(),
	})

	uc := NewMatchGenerationUsecase(users, jobRepo, matches, apps, nil, nil)

	created, err := uc.GenerateMatches(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected no matches for an applied job, got %d", len(created))
	}
}

func TestGenerateMatches_RejectsNonJobSeeker(t *testing.T) {
	employer := user.User{ID: uuid.New(), Username: "corp", Email: "corp@example.com", UserType: user.TypeEmployer}
	users := newFakeUserRepo(employer)
	jobRepo := &fakeJobRepo{}
	jobRepo.jobs = append(jobRepo.jobs, accessibleWebJob())

	uc := NewMatchGenerationUsecase(users, jobRepo, newFakeMatchRepo(), newFakeApplicationRepo(), nil, nil)

	_, err := uc.GenerateMatches(context.Background(), employer.ID)
	if !errors.Is(err, ErrNotJobSeeker) {
		t.Fatalf("expected ErrNotJobSeeker, got %v", err)
	}
}

func TestGenerateMatches_UnknownUser(t *testing.T) {
	uc := NewMatchGenerationUsecase(newFakeUserRepo(), &fakeJobRepo{}, newFakeMatchRepo(), newFakeApplicationRepo(), nil, nil)
	_, err := uc.GenerateMatches(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGenerateMatches_LostRaceIsSilent(t *testing.T) {
	seeker := seekerWithProfile()
	j := accessibleWebJob()

	users := newFakeUserRepo(seeker)
	jobRepo := &fakeJobRepo{}
	jobRepo.jobs = append(jobRepo.jobs, j)
	matches := newFakeMatchRepo()
	matches.racingPairs = map[pairKey]bool{{seeker.ID, j.ID}: true}

	uc := NewMatchGenerationUsecase(users, jobRepo, matches, newFakeApplicationRepo(), nil, nil)

	created, err := uc.GenerateMatches(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("lost race must not surface an error, got %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("lost race must not report a created match, got %d", len(created))
	}
}
