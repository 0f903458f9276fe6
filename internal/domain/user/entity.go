package user

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
	LocationEnabled      bool `json:"locationEnabled"`
	DarkModeEnabled      bool `json:"darkModeEnabled"`
}

// Certifications and documents are free-form records attached by the
// client; the store keeps them as opaque JSON.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string

	Phone      string
	Address    string
	JobTitle   string
	Experience string

	Skills         []string
	Certifications []map[string]any
	Documents      []map[string]any
	Settings       Settings

	ResetPasswordToken   string
	ResetPasswordExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
