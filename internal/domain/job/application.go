package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
)

// Applicant is the read-time projection of an application joined with
// the applicant's current profile. Applications themselves store only
// (job_id, user_id, status); there is no snapshot to go stale.
type Applicant struct {
	UserID         uuid.UUID
	Name           string
	Email          string
	Phone          string
	Address        string
	JobTitle       string
	Experience     string
	Skills         []string
	Certifications []map[string]any
	Documents      []map[string]any

	Status    string
	AppliedAt time.Time
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
