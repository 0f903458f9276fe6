package usecase

import (
	"context"
	"errors"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, userID uuid.UUID) (job.Job, error)
	ListApplications(ctx context.Context, jobID uuid.UUID) (pending, accepted []job.Applicant, err error)
	Decide(ctx context.Context, callerID, jobID, userID uuid.UUID, action string) error
}

type Applications struct {
	jobs         job.Repository
	applications job.ApplicationRepository
	users        user.Repository
}

func NewApplicationUsecase(jobs job.Repository, applications job.ApplicationRepository, users user.Repository) *Applications {
	return &Applications{jobs: jobs, applications: applications, users: users}
}

func (u *Applications) Apply(ctx context.Context, jobID, userID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return job.Job{}, user.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if err := u.applications.Insert(ctx, jobID, userID); err != nil {
		if errors.Is(err, job.ErrAlreadyApplied) {
			return job.Job{}, job.ErrAlreadyApplied
		}
		return job.Job{}, ErrInternal
	}

	return j, nil
}

func (u *Applications) ListApplications(ctx context.Context, jobID uuid.UUID) ([]job.Applicant, []job.Applicant, error) {
	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, nil, job.ErrNotFound
		}
		return nil, nil, ErrInternal
	}

	all, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, nil, ErrInternal
	}

	pending := make([]job.Applicant, 0, len(all))
	accepted := make([]job.Applicant, 0)
	for _, a := range all {
		switch a.Status {
		case job.ApplicationAccepted:
			accepted = append(accepted, a)
		default:
			pending = append(pending, a)
		}
	}
	return pending, accepted, nil
}

func (u *Applications) Decide(ctx context.Context, callerID, jobID, userID uuid.UUID, action string) error {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if j.PostedBy != callerID {
		return ErrForbidden
	}

	switch action {
	case ActionAccept:
		ok, err := u.applications.Accept(ctx, jobID, userID)
		if err != nil {
			return ErrInternal
		}
		if !ok {
			return job.ErrNotApplied
		}
	case ActionReject:
		ok, err := u.applications.Reject(ctx, jobID, userID)
		if err != nil {
			return ErrInternal
		}
		if !ok {
			return job.ErrNotApplied
		}
	default:
		return ErrInvalidAction
	}

	return nil
}
