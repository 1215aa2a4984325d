package entity

import (
	"time"

	"github.com/google/uuid"
)

// Program is an offered course or class.
type Program struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AgeGroup    string    `json:"age_group"`
	Schedule    string    `json:"schedule"`
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	MaxStudents int       `json:"max_students"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
