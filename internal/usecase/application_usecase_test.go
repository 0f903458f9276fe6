package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type applicationFixture struct {
	uc       *Applications
	jobs     *fakeJobRepo
	apps     *fakeApplicationRepo
	users    *fakeUserRepo
	jobID    uuid.UUID
	posterID uuid.UUID
	userID   uuid.UUID
}

func newApplicationFixture(t *testing.T) applicationFixture {
	t.Helper()

	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	users := newFakeUserRepo()

	posterID := uuid.New()
	jobID := uuid.New()
	if err := jobs.Create(context.Background(), job.Job{ID: jobID, Title: "Plumber", PostedBy: posterID}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	userID := uuid.New()
	if err := users.Create(context.Background(), user.User{ID: userID, Name: "Bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return applicationFixture{
		uc:       NewApplicationUsecase(jobs, apps, users),
		jobs:     jobs,
		apps:     apps,
		users:    users,
		jobID:    jobID,
		posterID: posterID,
		userID:   userID,
	}
}

func (f applicationFixture) pendingCount(t *testing.T) int {
	t.Helper()
	all, err := f.apps.ListByJob(context.Background(), f.jobID)
	if err != nil {
		t.Fatalf("list applications: %v", err)
	}
	n := 0
	for _, a := range all {
		if a.Status == job.ApplicationPending {
			n++
		}
	}
	return n
}

func TestApplications_Apply_DuplicateConflict(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if got := f.pendingCount(t); got != 1 {
		t.Fatalf("pending count = %d after first apply, want 1", got)
	}

	_, err := f.uc.Apply(context.Background(), f.jobID, f.userID)
	if !errors.Is(err, job.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if got := f.pendingCount(t); got != 1 {
		t.Fatalf("pending count = %d after duplicate apply, want 1", got)
	}
}

func TestApplications_Apply_AcceptedStillConflicts(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, ActionAccept); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	_, err := f.uc.Apply(context.Background(), f.jobID, f.userID)
	if !errors.Is(err, job.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied for accepted applicant, got %v", err)
	}
}

func TestApplications_Apply_MissingJobOrUser(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.uc.Apply(context.Background(), uuid.New(), f.userID)
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("missing job: expected ErrNotFound, got %v", err)
	}

	_, err = f.uc.Apply(context.Background(), f.jobID, uuid.New())
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("missing user: expected user.ErrNotFound, got %v", err)
	}
}

func TestApplications_Decide_AcceptMovesToAccepted(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, ActionAccept); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	pending, accepted, err := f.uc.ListApplications(context.Background(), f.jobID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending len = %d after accept, want 0", len(pending))
	}
	if len(accepted) != 1 || accepted[0].UserID != f.userID {
		t.Fatalf("accepted does not contain the applicant")
	}
}

func TestApplications_Decide_RejectRemovesEntirely(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, ActionReject); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	pending, accepted, err := f.uc.ListApplications(context.Background(), f.jobID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 0 || len(accepted) != 0 {
		t.Fatalf("rejected applicant still present: pending=%d accepted=%d", len(pending), len(accepted))
	}
}

func TestApplications_Decide_NotAppliedBadRequest(t *testing.T) {
	f := newApplicationFixture(t)

	err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, ActionAccept)
	if !errors.Is(err, job.ErrNotApplied) {
		t.Fatalf("expected ErrNotApplied, got %v", err)
	}
}

func TestApplications_Decide_AcceptTwiceFails(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, ActionAccept); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, ActionAccept)
	if !errors.Is(err, job.ErrNotApplied) {
		t.Fatalf("expected ErrNotApplied on second accept, got %v", err)
	}
}

func TestApplications_Decide_InvalidAction(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	err := f.uc.Decide(context.Background(), f.posterID, f.jobID, f.userID, "promote")
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestApplications_Decide_OnlyPoster(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.userID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	err := f.uc.Decide(context.Background(), uuid.New(), f.jobID, f.userID, ActionAccept)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
