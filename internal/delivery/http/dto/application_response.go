package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// ApplicantResponse is the restricted projection supervisors see when
// reviewing applications.
type ApplicantResponse struct {
	ID             uuid.UUID        `json:"_id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Skills         []string         `json:"skills"`
	Documents      []map[string]any `json:"documents"`
	Certifications []map[string]any `json:"certifications"`
	AppliedAt      time.Time        `json:"appliedAt"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type ApplicationsResponse struct {
	PendingApplications  []ApplicantResponse `json:"pendingApplications"`
	AcceptedApplications []ApplicantResponse `json:"acceptedApplications"`
}

func NewApplicationsResponse(pending, accepted []job.Applicant) ApplicationsResponse {
	return ApplicationsResponse{
		PendingApplications:  newApplicantResponses(pending),
		AcceptedApplications: newApplicantResponses(accepted),
	}
}

func newApplicantResponses(in []job.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(in))
	for _, a := range in {
		out = append(out, ApplicantResponse{
			ID:             a.UserID,
			Name:           a.Name,
			Email:          a.Email,
			Skills:         emptyIfNilStrings(a.Skills),
			Documents:      emptyIfNilRecords(a.Documents),
			Certifications: emptyIfNilRecords(a.Certifications),
			AppliedAt:      a.AppliedAt,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		})
	}
	return out
}
