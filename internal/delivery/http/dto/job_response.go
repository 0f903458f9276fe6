package dto

import (
	"fmt"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type PostedByResponse struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type JobResponse struct {
	ID             uuid.UUID         `json:"_id"`
	Title          string            `json:"title"`
	Company        string            `json:"company"`
	Location       string            `json:"location"`
	Type           string            `json:"type"`
	Salary         string            `json:"salary"`
	Description    string            `json:"description"`
	Requirements   []string          `json:"requirements"`
	Benefits       []string          `json:"benefits"`
	ContactPerson  job.ContactPerson `json:"contactPerson"`
	StartDate      string            `json:"startDate"`
	Status         string            `json:"status"`
	PostedBy       PostedByResponse  `json:"postedBy"`
	PostedAgo      string            `json:"postedAgo"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func NewJobResponse(j job.Job, now time.Time) JobResponse {
	return JobResponse{
		ID:            j.ID,
		Title:         j.Title,
		Company:       j.Company,
		Location:      j.Location,
		Type:          j.EmploymentType,
		Salary:        j.Salary,
		Description:   j.Description,
		Requirements:  emptyIfNilStrings(j.Requirements),
		Benefits:      emptyIfNilStrings(j.Benefits),
		ContactPerson: j.ContactPerson,
		StartDate:     j.StartDate,
		Status:        j.Status,
		PostedBy: PostedByResponse{
			ID:    j.PostedBy,
			Name:  j.PosterName,
			Email: j.PosterEmail,
		},
		PostedAgo: PostedAgo(j.CreatedAt, now),
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func NewJobResponses(jobs []job.Job, now time.Time) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j, now))
	}
	return out
}

// PostedAgo renders the time since posting in the coarsest unit that
// fits: minutes under an hour, hours under a day, days otherwise.
func PostedAgo(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)
	if diff < 0 {
		diff = 0
	}

	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case minutes < 60:
		return fmt.Sprintf("%d %s ago", minutes, pluralize("minute", minutes))
	case hours < 24:
		return fmt.Sprintf("%d %s ago", hours, pluralize("hour", hours))
	default:
		return fmt.Sprintf("%d %s ago", days, pluralize("day", days))
	}
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
