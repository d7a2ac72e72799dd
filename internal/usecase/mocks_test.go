package usecase

import (
	"context"
	"time"

	"able-match/internal/domain/application"
	"able-match/internal/domain/job"
	"able-match/internal/domain/match"
	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byID map[uuid.UUID]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: make(map[uuid.UUID]user.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, p repository.ProfileUpdate) error {
	u, ok := r.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Skills = p.Skills
	u.ExperienceLevel = p.ExperienceLevel
	u.PreferredLocation = p.PreferredLocation
	u.SalaryExpectation = p.SalaryExpectation
	u.DisabilityType = p.DisabilityType
	u.AccessibilityNeeds = p.AccessibilityNeeds
	u.WorkPreferences = p.WorkPreferences
	r.byID[id] = u
	return nil
}

type fakeJobRepo struct {
	jobs []job.Job
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	r.jobs = append(r.jobs, j)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (r *fakeJobRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *fakeJobRepo) ListPage(_ context.Context, limit, offset int) ([]job.Job, error) {
	if offset >= len(r.jobs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.jobs) {
		end = len(r.jobs)
	}
	return r.jobs[offset:end], nil
}

func (r *fakeJobRepo) ListByPoster(_ context.Context, posterID uuid.UUID) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for _, j := range r.jobs {
		if j.PostedBy == posterID {
			out = append(out, j)
		}
	}
	return out, nil
}

type pairKey struct {
	userID uuid.UUID
	jobID  uuid.UUID
}

type fakeMatchRepo struct {
	byID map[uuid.UUID]match.Match
	pair map[pairKey]uuid.UUID

	// When set, Insert reports inserted=false for these pairs even
	// though ExistsByUserAndJob said no row was there, the shape of a
	// lost uniqueness race.
	racingPairs map[pairKey]bool

	updateStatusErr error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		byID: make(map[uuid.UUID]match.Match),
		pair: make(map[pairKey]uuid.UUID),
	}
}

func (r *fakeMatchRepo) Insert(_ context.Context, m match.Match) (bool, error) {
	k := pairKey{m.UserID, m.JobID}
	if r.racingPairs[k] {
		return false, nil
	}
	if _, ok := r.pair[k]; ok {
		return false, nil
	}
	r.byID[m.ID] = m
	r.pair[k] = m.ID
	return true, nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id uuid.UUID) (match.Match, error) {
	m, ok := r.byID[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m, nil
}

func (r *fakeMatchRepo) GetByUserAndJob(_ context.Context, userID, jobID uuid.UUID) (match.Match, error) {
	id, ok := r.pair[pairKey{userID, jobID}]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *fakeMatchRepo) ExistsByUserAndJob(_ context.Context, userID, jobID uuid.UUID) (bool, error) {
	_, ok := r.pair[pairKey{userID, jobID}]
	return ok, nil
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, id uuid.UUID, status match.Status) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	m, ok := r.byID[id]
	if !ok {
		return match.ErrNotFound
	}
	m.Status = status
	r.byID[id] = m
	return nil
}

func (r *fakeMatchRepo) ListByUser(_ context.Context, userID uuid.UUID, status match.Status) ([]match.Match, error) {
	out := make([]match.Match, 0)
	for _, m := range r.byID {
		if m.UserID != userID {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeApplicationRepo struct {
	byID map[uuid.UUID]application.Application
	pair map[pairKey]uuid.UUID

	deleteErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		byID: make(map[uuid.UUID]application.Application),
		pair: make(map[pairKey]uuid.UUID),
	}
}

func (r *fakeApplicationRepo) Insert(_ context.Context, a application.Application) error {
	r.byID[a.ID] = a
	r.pair[pairKey{a.UserID, a.JobID}] = a.ID
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *fakeApplicationRepo) ExistsByUserAndJob(_ context.Context, userID, jobID uuid.UUID) (bool, error) {
	_, ok := r.pair[pairKey{userID, jobID}]
	return ok, nil
}

func (r *fakeApplicationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	a, ok := r.byID[id]
	if !ok {
		return application.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.pair, pairKey{a.UserID, a.JobID})
	return nil
}

// fakeTxRunner runs fn against the shared fakes and restores their
// state when fn fails, mirroring a rolled-back transaction.
type fakeTxRunner struct {
	matches *fakeMatchRepo
	apps    *fakeApplicationRepo
}

func newFakeTxRunner(matches *fakeMatchRepo, apps *fakeApplicationRepo) *fakeTxRunner {
	return &fakeTxRunner{matches: matches, apps: apps}
}

func (r *fakeTxRunner) RunMatchApplicationTx(_ context.Context, fn func(repository.MatchRepository, repository.ApplicationRepository) error) error {
	mByID, mPair := r.matches.snapshot()
	aByID, aPair := r.apps.snapshot()

	if err := fn(r.matches, r.apps); err != nil {
		r.matches.byID, r.matches.pair = mByID, mPair
		r.apps.byID, r.apps.pair = aByID, aPair
		return err
	}
	return nil
}

func (r *fakeMatchRepo) snapshot() (map[uuid.UUID]match.Match, map[pairKey]uuid.UUID) {
	byID := make(map[uuid.UUID]match.Match, len(r.byID))
	for k, v := range r.byID {
		byID[k] = v
	}
	pair := make(map[pairKey]uuid.UUID, len(r.pair))
	for k, v := range r.pair {
		pair[k] = v
	}
	return byID, pair
}

func (r *fakeApplicationRepo) snapshot() (map[uuid.UUID]application.Application, map[pairKey]uuid.UUID) {
	byID := make(map[uuid.UUID]application.Application, len(r.byID))
	for k, v := range r.byID {
		byID[k] = v
	}
	pair := make(map[pairKey]uuid.UUID, len(r.pair))
	for k, v := range r.pair {
		pair[k] = v
	}
	return byID, pair
}

type recordingNotifier struct {
	userID uuid.UUID
	count  int
	calls  int
}

func (n *recordingNotifier) MatchesGenerated(userID uuid.UUID, count int) {
	n.userID = userID
	n.count = count
	n.calls++
}

func seekerWithProfile() user.User {
	return user.User{
		ID:                 uuid.New(),
		Username:           "amara",
		Email:              "amara@example.com",
		UserType:           user.TypeJobSeeker,
		Skills:             "HTML, CSS, JavaScript, React",
		ExperienceLevel:    "1-3",
		PreferredLocation:  "New York",
		SalaryExpectation:  "70000",
		DisabilityType:     "mobility",
		AccessibilityNeeds: "wheelchair access, flexible hours",
	}
}

func accessibleWebJob() job.Job {
	return job.Job{
		ID:                    uuid.New(),
		Title:                 "Accessible Web Developer",
		Company:               "TechCorp Solutions",
		Description:           "Build inclusive web experiences.",
		RequiredSkills:        "HTML, CSS, JavaScript, React, Vue.js, WCAG, Accessibility",
		ExperienceRequired:    "1-3",
		Location:              "Remote / New York, NY",
		WorkType:              "remote",
		AccessibilityFeatures: "wheelchair accessible office, flexible working hours, screen reader support",
		SalaryRange:           "$65,000 - $85,000 annually",
		PostedBy:              uuid.New(),
		CreatedAt:             time.Now().UTC(),
	}
}

func unrelatedJob() job.Job {
	return job.Job{
		ID:                 uuid.New(),
		Title:              "Forklift Operator",
		Company:            "Warehouse Co",
		Description:        "Operate forklifts.",
		RequiredSkills:     "Forklift, Logistics, Inventory",
		ExperienceRequired: "5-10",
		Location:           "Anchorage, AK",
		WorkType:           "onsite",
		SalaryRange:        "$35,000 - $45,000",
		PostedBy:           uuid.New(),
		CreatedAt:          time.Now().UTC(),
	}
}
