package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title          string
	Company        string
	Location       string
	EmploymentType string
	Salary         string
	Description    string
	Requirements   []string
	Benefits       []string
	ContactPerson  job.ContactPerson
	StartDate      string
	Status         string
}

type UpdateJobInput struct {
	Title          *string
	Company        *string
	Location       *string
	EmploymentType *string
	Salary         *string
	Description    *string
	Requirements   *[]string
	Benefits       *[]string
	ContactPerson  *job.ContactPerson
	StartDate      *string
	Status         *string
}

func (in UpdateJobInput) Empty() bool {
	return in.Title == nil && in.Company == nil && in.Location == nil &&
		in.EmploymentType == nil && in.Salary == nil && in.Description == nil &&
		in.Requirements == nil && in.Benefits == nil && in.ContactPerson == nil &&
		in.StartDate == nil && in.Status == nil
}

type JobUsecase interface {
	CreateJob(ctx context.Context, postedBy uuid.UUID, in CreateJobInput) (job.Job, error)
	ListJobs(ctx context.Context) ([]job.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	UpdateJob(ctx context.Context, callerID, id uuid.UUID, in UpdateJobInput) (job.Job, error)
	DeleteJob(ctx context.Context, callerID, id uuid.UUID) error
}

type Jobs struct {
	jobs   job.Repository
	cache  ListCache
	logger *log.Logger
}

func NewJobUsecase(jobs job.Repository, cache ListCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger}
}

func (u *Jobs) CreateJob(ctx context.Context, postedBy uuid.UUID, in CreateJobInput) (job.Job, error) {
	if postedBy == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" ||
		strings.TrimSpace(in.Location) == "" || strings.TrimSpace(in.Salary) == "" ||
		strings.TrimSpace(in.Description) == "" {
		return job.Job{}, ErrInvalidInput
	}
	if !job.ValidType(in.EmploymentType) {
		return job.Job{}, ErrInvalidInput
	}

	startDate := strings.TrimSpace(in.StartDate)
	if startDate == "" {
		startDate = "Immediate"
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = job.StatusOpen
	}
	if !job.ValidStatus(status) {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(in.Title),
		Company:        strings.TrimSpace(in.Company),
		Location:       strings.TrimSpace(in.Location),
		EmploymentType: in.EmploymentType,
		Salary:         in.Salary,
		Description:    in.Description,
		Requirements:   in.Requirements,
		Benefits:       in.Benefits,
		ContactPerson:  in.ContactPerson,
		StartDate:      startDate,
		Status:         status,
		PostedBy:       postedBy,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateList(ctx)
	return created, nil
}

func (u *Jobs) ListJobs(ctx context.Context) ([]job.Job, error) {
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, jobsListCacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", jobsListCacheKey)
			}
			return cached, nil
		}
	}

	list, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, jobsListCacheKey, list, 0)
	}
	return list, nil
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) UpdateJob(ctx context.Context, callerID, id uuid.UUID, in UpdateJobInput) (job.Job, error) {
	if in.Empty() {
		return job.Job{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.PostedBy != callerID {
		return job.Job{}, ErrForbidden
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return job.Job{}, ErrInvalidInput
		}
		j.Title = title
	}
	if in.Company != nil {
		j.Company = *in.Company
	}
	if in.Location != nil {
		j.Location = *in.Location
	}
	if in.EmploymentType != nil {
		if !job.ValidType(*in.EmploymentType) {
			return job.Job{}, ErrInvalidInput
		}
		j.EmploymentType = *in.EmploymentType
	}
	if in.Salary != nil {
		j.Salary = *in.Salary
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Requirements != nil {
		j.Requirements = *in.Requirements
	}
	if in.Benefits != nil {
		j.Benefits = *in.Benefits
	}
	if in.ContactPerson != nil {
		j.ContactPerson = *in.ContactPerson
	}
	if in.StartDate != nil {
		j.StartDate = *in.StartDate
	}
	if in.Status != nil {
		if !job.ValidStatus(*in.Status) {
			return job.Job{}, ErrInvalidInput
		}
		j.Status = *in.Status
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	updated, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateList(ctx)
	return updated, nil
}

func (u *Jobs) DeleteJob(ctx context.Context, callerID, id uuid.UUID) error {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if j.PostedBy != callerID {
		return ErrForbidden
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	u.invalidateList(ctx)
	return nil
}

func (u *Jobs) invalidateList(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, jobsListCacheKey); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] Cache invalidation failed: %v", err)
	}
}
