package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"able-match/internal/domain/match"

	"github.com/google/uuid"
)

func newMatchActionUsecase(matches *fakeMatchRepo, apps *fakeApplicationRepo) *MatchAction {
	return NewMatchActionUsecase(matches, newFakeTxRunner(matches, apps), nil)
}

func seedMatch(t *testing.T, repo *fakeMatchRepo, userID uuid.UUID, status match.Status) match.Match {
	t.Helper()
	m := match.Match{
		ID:         uuid.New(),
		UserID:     userID,
		JobID:      uuid.New(),
		MatchScore: 72.5,
		Status:     match.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("seed match: %v", err)
	}
	if status != match.StatusPending {
		if err := repo.UpdateStatus(context.Background(), m.ID, status); err != nil {
			t.Fatalf("seed status: %v", err)
		}
		m.Status = status
	}
	return m
}

func TestApplyAction_LikeFromPending(t *testing.T) {
	userID := uuid.New()
	matches := newFakeMatchRepo()
	m := seedMatch(t, matches, userID, match.StatusPending)

	uc := newMatchActionUsecase(matches, newFakeApplicationRepo())

	updated, err := uc.ApplyAction(context.Background(), userID, m.ID, match.ActionLike, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != match.StatusLiked {
		t.Fatalf("expected liked, got %s", updated.Status)
	}
}

func TestApplyAction_ApplyCreatesApplication(t *testing.T) {
	userID := uuid.New()
	matches := newFakeMatchRepo()
	m := seedMatch(t, matches, userID, match.StatusLiked)
	apps := newFakeApplicationRepo()

	uc := newMatchActionUsecase(matches, apps)

	updated, err := uc.ApplyAction(context.Background(), userID, m.ID, match.ActionApply, "screen reader for interviews")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != match.StatusApplied {
		t.Fatalf("expected applied, got %s", updated.Status)
	}

	exists, _ := apps.ExistsByUserAndJob(context.Background(), userID, m.JobID)
	if !exists {
		t.Fatal("expected an application record for the pair")
	}
}

func TestApplyAction_OwnershipDenied(t *testing.T) {
	owner := uuid.New()
	matches := newFakeMatchRepo()
	m := seedMatch(t, matches, owner, match.StatusPending)

	uc := newMatchActionUsecase(matches, newFakeApplicationRepo())

	_, err := uc.ApplyAction(context.Background(), uuid.New(), m.ID, match.ActionLike, "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Denial must not mutate.
	got, _ := matches.GetByID(context.Background(), m.ID)
	if got.Status != match.StatusPending {
		t.Fatalf("status mutated to %s", got.Status)
	}
}

func TestApplyAction_NotFoundDistinctFromDenial(t *testing.T) {
	uc := newMatchActionUsecase(newFakeMatchRepo(), newFakeApplicationRepo())
	_, err := uc.ApplyAction(context.Background(), uuid.New(), uuid.New(), match.ActionLike, "")
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestApplyAction_InvalidTransitions(t *testing.T) {
	cases := []struct {
		from   match.Status
		action match.Action
	}{
		{match.StatusPassed, match.ActionLike},
		{match.StatusPassed, match.ActionApply},
		{match.StatusLiked, match.ActionPass},
		{match.StatusApplied, match.ActionPass},
		{match.StatusApplied, match.ActionApply},
	}

	for _, c := range cases {
		userID := uuid.New()
		matches := newFakeMatchRepo()
		m := seedMatch(t, matches, userID, c.from)

		uc := newMatchActionUsecase(matches, newFakeApplicationRepo())
		_, err := uc.ApplyAction(context.Background(), userID, m.ID, c.action, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s + %s: expected ErrInvalidTransition, got %v", c.from, c.action, err)
		}

		got, _ := matches.GetByID(context.Background(), m.ID)
		if got.Status != c.from {
			t.Errorf("%s + %s: status mutated to %s", c.from, c.action, got.Status)
		}
	}
}

func TestApplyAction_UnknownAction(t *testing.T) {
	userID := uuid.New()
	matches := newFakeMatchRepo()
	m := seedMatch(t, matches, userID, match.StatusPending)

	uc := newMatchActionUsecase(matches, newFakeApplicationRepo())
	_, err := uc.ApplyAction(context.Background(), userID, m.ID, match.Action("superlike"), "")
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestApplyAction_ApplyRollsBackApplicationOnStatusFailure(t *testing.T) {
	userID := uuid.New()
	matches := newFakeMatchRepo()
	m := seedMatch(t, matches, userID, match.StatusPending)
	apps := newFakeApplicationRepo()

	matches.updateStatusErr = errors.New("connection reset")
	uc := newMatchActionUsecase(matches, apps)

	_, err := uc.ApplyAction(context.Background(), userID, m.ID, match.ActionApply, "")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}

	// The application insert and the status change are one unit: a
	// failed status write must leave no application behind.
	exists, _ := apps.ExistsByUserAndJob(context.Background(), userID, m.JobID)
	if exists {
		t.Fatal("application persisted despite failed status update")
	}
	got, _ := matches.GetByID(context.Background(), m.ID)
	if got.Status != match.StatusPending {
		t.Fatalf("match status = %s, want pending", got.Status)
	}
}

func TestApplyAction_ApplyTwiceRejected(t *testing.T) {
	userID := uuid.New()
	matches := newFakeMatchRepo()
	m := seedMatch(t, matches, userID, match.StatusPending)
	apps := newFakeApplicationRepo()

	uc := newMatchActionUsecase(matches, apps)
	if _, err := uc.ApplyAction(context.Background(), userID, m.ID, match.ActionApply, ""); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	// Force the match back to a state from which apply is legal, then
	// check the existing application still blocks a second one.
	if err := matches.UpdateStatus(context.Background(), m.ID, match.StatusLiked); err != nil {
		t.Fatalf("reset status: %v", err)
	}
	_, err := uc.ApplyAction(context.Background(), userID, m.ID, match.ActionApply, "")
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}
