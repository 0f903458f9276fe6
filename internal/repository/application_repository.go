package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Insert(ctx context.Context, jobID, userID uuid.UUID) error {
	// The (job_id, user_id) primary key turns a concurrent duplicate
	// apply into a unique violation instead of a lost check.
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (job_id, user_id, status)
		 VALUES ($1, $2, $3)`,
		jobID, userID, job.ApplicationPending,
	)
	if isUniqueViolation(err) {
		return job.ErrAlreadyApplied
	}
	return err
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]job.Applicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.user_id, u.name, u.email, u.phone, u.address, u.job_title, u.experience,
		        u.skills, u.certifications, u.documents,
		        a.status, a.applied_at, a.decided_at, u.created_at, u.updated_at
		 FROM job_applications a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.job_id = $1
		 ORDER BY a.applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Applicant, 0)
	for rows.Next() {
		var a job.Applicant
		var skills, certs, docs []byte
		if err := rows.Scan(
			&a.UserID, &a.Name, &a.Email, &a.Phone, &a.Address, &a.JobTitle, &a.Experience,
			&skills, &certs, &docs,
			&a.Status, &a.AppliedAt, &a.DecidedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		unmarshalInto(skills, &a.Skills)
		unmarshalInto(certs, &a.Certifications)
		unmarshalInto(docs, &a.Documents)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Accept(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE job_applications
		 SET status = $3, decided_at = now()
		 WHERE job_id = $1 AND user_id = $2 AND status = $4`,
		jobID, userID, job.ApplicationAccepted, job.ApplicationPending,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresApplicationRepository) Reject(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx,
		`DELETE FROM job_applications
		 WHERE job_id = $1 AND user_id = $2 AND status = $3`,
		jobID, userID, job.ApplicationPending,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
