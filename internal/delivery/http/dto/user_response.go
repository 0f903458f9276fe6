package dto

import (
	"time"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID        `json:"_id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	JobTitle       string           `json:"jobTitle"`
	Experience     string           `json:"experience"`
	Skills         []string         `json:"skills"`
	Certifications []map[string]any `json:"certifications"`
	Documents      []map[string]any `json:"documents"`
	Settings       user.Settings    `json:"settings"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Address:        u.Address,
		JobTitle:       u.JobTitle,
		Experience:     u.Experience,
		Skills:         emptyIfNilStrings(u.Skills),
		Certifications: emptyIfNilRecords(u.Certifications),
		Documents:      emptyIfNilRecords(u.Documents),
		Settings:       u.Settings,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func NewUserResponses(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func emptyIfNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilRecords(s []map[string]any) []map[string]any {
	if s == nil {
		return []map[string]any{}
	}
	return s
}
