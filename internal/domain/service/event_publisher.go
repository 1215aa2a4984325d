package service

import (
	"context"
	"time"
)

// Submission kinds published when the public creates a record.
const (
	SubmissionContact      = "contact_message"
	SubmissionTestimonial  = "testimonial"
	SubmissionRegistration = "student_registration"
)

// SubmissionEvent announces a new public submission awaiting staff attention.
type SubmissionEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Kind        string    `json:"kind"`
	RecordID    string    `json:"record_id"`
	Summary     string    `json:"summary"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSubmissionEvent publishes a submission event for async processing
	PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
