package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a review left by a student or parent. Only approved ones are public.
type Testimonial struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"student_name"`
	ParentName  string    `json:"parent_name"`
	ProgramName string    `json:"program_name"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	ImageURL    string    `json:"image_url"`
	IsApproved  bool      `json:"is_approved"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
