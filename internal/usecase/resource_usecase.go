package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ListParams carries a validated page window and the raw filter query values
// keyed by query parameter name (e.g. "active", "category").
type ListParams struct {
	Pagination
	Filters map[string]string
}

// ResourceUsecase is the generic contract for every content entity.
// E is the entity, C the create input and U the partial update input.
type ResourceUsecase[E any, C any, U any] interface {
	// List applies visibility rules for viewer, then the supplied filters.
	List(ctx context.Context, viewer *entity.Principal, params ListParams) (*PageResult[E], error)

	// Get returns the record; hidden records are reported as not found to non-admins.
	Get(ctx context.Context, viewer *entity.Principal, id uuid.UUID) (*E, error)

	// Create validates the input before touching the store.
	Create(ctx context.Context, viewer *entity.Principal, input *C) (*E, error)

	// Update applies only the fields present in the input.
	Update(ctx context.Context, id uuid.UUID, input *U) (*E, error)

	// Delete removes or deactivates the record depending on the entity.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Concrete use cases, one per entity.
type (
	ProgramUsecase     = ResourceUsecase[entity.Program, CreateProgramInput, UpdateProgramInput]
	CoachUsecase       = ResourceUsecase[entity.Coach, CreateCoachInput, UpdateCoachInput]
	TestimonialUsecase = ResourceUsecase[entity.Testimonial, CreateTestimonialInput, UpdateTestimonialInput]
	FacilityUsecase    = ResourceUsecase[entity.Facility, CreateFacilityInput, UpdateFacilityInput]
	GalleryUsecase     = ResourceUsecase[entity.GalleryImage, CreateGalleryImageInput, UpdateGalleryImageInput]
	ContactUsecase     = ResourceUsecase[entity.ContactMessage, CreateContactMessageInput, UpdateContactMessageInput]
	StudentUsecase     = ResourceUsecase[entity.Student, CreateStudentInput, UpdateStudentInput]
)
