package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentStatus tracks a registration through review.
type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "pending"
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// IsValid checks if the StudentStatus is a valid value.
func (s StudentStatus) IsValid() bool {
	switch s {
	case StudentStatusPending, StudentStatusActive, StudentStatusInactive:
		return true
	default:
		return false
	}
}

// Student is an enrolment record, created by self registration or by an admin.
type Student struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	DateOfBirth *time.Time    `json:"date_of_birth"`
	ParentName  string        `json:"parent_name"`
	ParentPhone string        `json:"parent_phone"`
	ParentEmail string        `json:"parent_email"`
	ProgramID   *uuid.UUID    `json:"program_id"`
	Notes       string        `json:"notes"`
	Status      StudentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
