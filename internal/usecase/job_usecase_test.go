package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

func validCreateJobInput() CreateJobInput {
	return CreateJobInput{
		Title:          "Site Engineer",
		Company:        "Acme Construction",
		Location:       "Rotterdam",
		EmploymentType: job.TypeFullTime,
		Salary:         "4000-5000",
		Description:    "Oversees site work",
	}
}

func TestJobs_CreateJob_BindsPosterAndDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)
	poster := uuid.New()

	created, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.PostedBy != poster {
		t.Fatalf("postedBy = %s, want caller %s", created.PostedBy, poster)
	}
	if created.StartDate != "Immediate" {
		t.Fatalf("startDate default = %q, want Immediate", created.StartDate)
	}
	if created.Status != job.StatusOpen {
		t.Fatalf("status default = %q, want %q", created.Status, job.StatusOpen)
	}
}

func TestJobs_CreateJob_RejectsUnknownEmploymentType(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	in := validCreateJobInput()
	in.EmploymentType = "Freelance"
	_, err := uc.CreateJob(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobs_ListJobs_NewestFirst(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)
	poster := uuid.New()

	first, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := uc.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list len = %d, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("jobs not ordered newest-first")
	}
}

func TestJobs_ListJobs_UsesCacheUntilInvalidated(t *testing.T) {
	repo := newFakeJobRepo()
	cache := newFakeListCache()
	uc := NewJobUsecase(repo, cache, nil)
	poster := uuid.New()

	created, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.ListJobs(context.Background()); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected list to populate cache, sets = %d", cache.sets)
	}

	if _, err := uc.ListJobs(context.Background()); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected second list to hit cache, hits = %d", cache.hits)
	}

	if err := uc.DeleteJob(context.Background(), poster, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := cache.entries[jobsListCacheKey]; ok {
		t.Fatalf("delete did not invalidate list cache")
	}
}

func TestJobs_UpdateJob_OnlyPosterMayModify(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)
	poster := uuid.New()

	created, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Changed"
	_, err = uc.UpdateJob(context.Background(), uuid.New(), created.ID, UpdateJobInput{Title: &title})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobs_UpdateJob_PartialMerge(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)
	poster := uuid.New()

	created, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := job.StatusFilled
	updated, err := uc.UpdateJob(context.Background(), poster, created.ID, UpdateJobInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != job.StatusFilled {
		t.Fatalf("status = %q, want Filled", updated.Status)
	}
	if updated.Title != created.Title || updated.Company != created.Company {
		t.Fatalf("omitted fields changed")
	}
}

func TestJobs_DeleteJob_ThenGetNotFound(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)
	poster := uuid.New()

	created, err := uc.CreateJob(context.Background(), poster, validCreateJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.DeleteJob(context.Background(), poster, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = uc.GetJob(context.Background(), created.ID)
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestJobs_DeleteJob_MissingNotFound(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)

	err := uc.DeleteJob(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
