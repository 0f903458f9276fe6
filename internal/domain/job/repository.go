package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("job not found")
	ErrAlreadyApplied = errors.New("already applied for this job")
	ErrNotApplied     = errors.New("user has not applied for this job")
)

type Repository interface {
	Create(ctx context.Context, j Job) error
	// List returns every job newest-first with the poster's name and
	// email joined in.
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationRepository interface {
	// Insert records a pending application. A duplicate for the same
	// (job, user) pair fails with ErrAlreadyApplied regardless of
	// state; the composite primary key makes this atomic under
	// concurrent applies.
	Insert(ctx context.Context, jobID, userID uuid.UUID) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Applicant, error)
	// Accept flips a pending application to accepted; Reject removes
	// a pending one. Both report whether a pending row matched, so a
	// stale decision is detected instead of applied twice.
	Accept(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
	Reject(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
}
