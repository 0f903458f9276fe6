package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeFullTime  = "Full-time"
	TypePartTime  = "Part-time"
	TypeContract  = "Contract"
	TypeTemporary = "Temporary"
)

const (
	StatusOpen   = "Open"
	StatusFilled = "Filled"
	StatusClosed = "Closed"
)

func ValidType(t string) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeTemporary:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusFilled, StatusClosed:
		return true
	}
	return false
}

type ContactPerson struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Job struct {
	ID             uuid.UUID
	Title          string
	Company        string
	Location       string
	EmploymentType string
	Salary         string
	Description    string
	Requirements   []string
	Benefits       []string
	ContactPerson  ContactPerson
	StartDate      string
	Status         string
	PostedBy       uuid.UUID

	// filled by joined reads, never written
	PosterName  string
	PosterEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}
