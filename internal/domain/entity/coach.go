package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coach is a staff member shown on the public site.
type Coach struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Bio             string    `json:"bio"`
	Specialization  string    `json:"specialization"`
	ExperienceYears int       `json:"experience_years"`
	ImageURL        string    `json:"image_url"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
