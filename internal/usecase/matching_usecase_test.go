package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestComputeMatch_Success(t *testing.T) {
	seeker := seekerWithProfile()
	j := accessibleWebJob()
	users := newFakeUserRepo(seeker)
	jobs := &fakeJobRepo{}
	jobs.jobs = append(jobs.jobs, j)

	uc := NewMatchingUsecase(users, jobs)

	res, err := uc.ComputeMatch(context.Background(), seeker.ID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Overall < 0 || res.Overall > 100 {
		t.Fatalf("overall out of range: %v", res.Overall)
	}
	if res.Breakdown.ExperienceMatch != 100 {
		t.Errorf("expected experience 100, got %v", res.Breakdown.ExperienceMatch)
	}
	if res.Breakdown.LocationMatch != 100 {
		t.Errorf("expected location 100 for remote work, got %v", res.Breakdown.LocationMatch)
	}
}

func TestComputeMatch_UnknownJob(t *testing.T) {
	seeker := seekerWithProfile()
	uc := NewMatchingUsecase(newFakeUserRepo(seeker), &fakeJobRepo{})
	_, err := uc.ComputeMatch(context.Background(), seeker.ID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestComputeMatch_UnknownUser(t *testing.T) {
	uc := NewMatchingUsecase(newFakeUserRepo(), &fakeJobRepo{})
	_, err := uc.ComputeMatch(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListMatches_InvalidStatusFilter(t *testing.T) {
	uc := NewMatchListUsecase(newFakeMatchRepo(), &fakeJobRepo{}, newFakeApplicationRepo(), nil, 0)
	_, err := uc.ListMatches(context.Background(), uuid.New(), "archived")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListMatches_AnnotatesActiveApplications(t *testing.T) {
	seeker := seekerWithProfile()
	j := accessibleWebJob()
	users := newFakeUserRepo(seeker)
	jobs := &fakeJobRepo{}
	jobs.jobs = append(jobs.jobs, j)
	matches := newFakeMatchRepo()
	apps := newFakeApplicationRepo()

	gen := NewMatchGenerationUsecase(users, jobs, matches, apps, nil, nil)
	created, err := gen.GenerateMatches(context.Background(), seeker.ID)
	if err != nil || len(created) != 1 {
		t.Fatalf("generation failed: %v (%d created)", err, len(created))
	}

	appUC := NewApplicationUsecase(users, jobs, apps, newFakeTxRunner(matches, apps), nil)
	if _, err := appUC.Apply(context.Background(), seeker.ID, j.ID, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	list := NewMatchListUsecase(matches, jobs, apps, nil, 0)
	items, err := list.ListMatches(context.Background(), seeker.ID, "all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].HasActiveApplication {
		t.Error("expected HasActiveApplication=true after applying")
	}
	if items[0].Match.Status != "applied" {
		t.Errorf("expected match status applied, got %s", items[0].Match.Status)
	}
	if items[0].Job.ID != j.ID {
		t.Error("expected job joined onto the match row")
	}
}
