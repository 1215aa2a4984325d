package usecase

import (
	"github.com/google/uuid"
)

// Create inputs use plain fields with "required" tags. Update inputs use pointers:
// a nil field is left untouched, a non-nil one is validated and written.

type CreateProgramInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	AgeGroup    string  `json:"age_group" validate:"max=100"`
	Schedule    string  `json:"schedule" validate:"max=255"`
	Duration    string  `json:"duration" validate:"max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	MaxStudents int     `json:"max_students" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"max=500"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateProgramInput struct {
	Title       *string  `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string  `json:"description" validate:"omitnil,min=1"`
	AgeGroup    *string  `json:"age_group" validate:"omitnil,max=100"`
	Schedule    *string  `json:"schedule" validate:"omitnil,max=255"`
	Duration    *string  `json:"duration" validate:"omitnil,max=100"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	MaxStudents *int     `json:"max_students" validate:"omitnil,gte=0"`
	ImageURL    *string  `json:"image_url" validate:"omitnil,max=500"`
	IsActive    *bool    `json:"is_active"`
}

type CreateCoachInput struct {
	Name            string `json:"name" validate:"required,max=255"`
	Title           string `json:"title" validate:"max=255"`
	Bio             string `json:"bio"`
	Specialization  string `json:"specialization" validate:"max=255"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	ImageURL        string `json:"image_url" validate:"max=500"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	Phone           string `json:"phone" validate:"max=50"`
	IsActive        *bool  `json:"is_active"`
}

type UpdateCoachInput struct {
	Name            *string `json:"name" validate:"omitnil,min=1,max=255"`
	Title           *string `json:"title" validate:"omitnil,max=255"`
	Bio             *string `json:"bio"`
	Specialization  *string `json:"specialization" validate:"omitnil,max=255"`
	ExperienceYears *int    `json:"experience_years" validate:"omitnil,gte=0"`
	ImageURL        *string `json:"image_url" validate:"omitnil,max=500"`
	Email           *string `json:"email" validate:"omitnil,omitempty,email,max=255"`
	Phone           *string `json:"phone" validate:"omitnil,max=50"`
	IsActive        *bool   `json:"is_active"`
}

// CreateTestimonialInput is accepted from the public. IsApproved and IsFeatured
// are honoured only when an admin creates the record.
type CreateTestimonialInput struct {
	StudentName string `json:"student_name" validate:"required,max=255"`
	ParentName  string `json:"parent_name" validate:"max=255"`
	ProgramName string `json:"program_name" validate:"max=255"`
	Content     string `json:"content" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL    string `json:"image_url" validate:"max=500"`
	IsApproved  *bool  `json:"is_approved"`
	IsFeatured  *bool  `json:"is_featured"`
}

type UpdateTestimonialInput struct {
	StudentName *string `json:"student_name" validate:"omitnil,min=1,max=255"`
	ParentName  *string `json:"parent_name" validate:"omitnil,max=255"`
	ProgramName *string `json:"program_name" validate:"omitnil,max=255"`
	Content     *string `json:"content" validate:"omitnil,min=1"`
	Rating      *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	ImageURL    *string `json:"image_url" validate:"omitnil,max=500"`
	IsApproved  *bool   `json:"is_approved"`
	IsFeatured  *bool   `json:"is_featured"`
}

type CreateFacilityInput struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" validate:"max=500"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateFacilityInput struct {
	Name         *string `json:"name" validate:"omitnil,min=1,max=255"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url" validate:"omitnil,max=500"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type CreateGalleryImageInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" validate:"required,max=500"`
	Category     string `json:"category" validate:"max=100"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateGalleryImageInput struct {
	Title        *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url" validate:"omitnil,min=1,max=500"`
	Category     *string `json:"category" validate:"omitnil,max=100"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type CreateContactMessageInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=50"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactMessageInput only toggles the read flag.
type UpdateContactMessageInput struct {
	IsRead *bool `json:"is_read"`
}

// CreateStudentInput is accepted from the public registration form. Status is
// honoured only when an admin creates the record; otherwise it is pending.
type CreateStudentInput struct {
	Name        string     `json:"name" validate:"required,max=255"`
	DateOfBirth string     `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ParentName  string     `json:"parent_name" validate:"required,max=255"`
	ParentPhone string     `json:"parent_phone" validate:"required,max=50"`
	ParentEmail string     `json:"parent_email" validate:"omitempty,email,max=255"`
	ProgramID   *uuid.UUID `json:"program_id"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending active inactive"`
}

type UpdateStudentInput struct {
	Name        *string    `json:"name" validate:"omitnil,min=1,max=255"`
	DateOfBirth *string    `json:"date_of_birth" validate:"omitnil,omitempty,datetime=2006-01-02"`
	ParentName  *string    `json:"parent_name" validate:"omitnil,min=1,max=255"`
	ParentPhone *string    `json:"parent_phone" validate:"omitnil,min=1,max=50"`
	ParentEmail *string    `json:"parent_email" validate:"omitnil,omitempty,email,max=255"`
	ProgramID   *uuid.UUID `json:"program_id"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status" validate:"omitnil,oneof=pending active inactive"`
}
