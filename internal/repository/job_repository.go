package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `j.id, j.title, j.company, j.location, j.employment_type, j.salary,
	j.description, j.requirements, j.benefits, j.contact_person, j.start_date,
	j.status, j.posted_by, u.name, u.email, j.created_at, j.updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs
		 (id, title, company, location, employment_type, salary, description,
		  requirements, benefits, contact_person, start_date, status, posted_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.Title, j.Company, j.Location, j.EmploymentType, j.Salary, j.Description,
		marshalList(j.Requirements), marshalList(j.Benefits), marshalObject(j.ContactPerson),
		j.StartDate, j.Status, j.PostedBy,
	)
	return err
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 JOIN users u ON u.id = j.posted_by
		 ORDER BY j.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 JOIN users u ON u.id = j.posted_by
		 WHERE j.id = $1`,
		id,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET
		   title = $2, company = $3, location = $4, employment_type = $5, salary = $6,
		   description = $7, requirements = $8, benefits = $9, contact_person = $10,
		   start_date = $11, status = $12, updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Company, j.Location, j.EmploymentType, j.Salary,
		j.Description, marshalList(j.Requirements), marshalList(j.Benefits),
		marshalObject(j.ContactPerson), j.StartDate, j.Status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var reqs, benefits, contact []byte
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.EmploymentType, &j.Salary,
		&j.Description, &reqs, &benefits, &contact, &j.StartDate,
		&j.Status, &j.PostedBy, &j.PosterName, &j.PosterEmail, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	unmarshalInto(reqs, &j.Requirements)
	unmarshalInto(benefits, &j.Benefits)
	unmarshalInto(contact, &j.ContactPerson)
	return j, nil
}
