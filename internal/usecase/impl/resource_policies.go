package impl

import (
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// NewProgramService builds the program use case. Inactive programs are hidden
// from the public unless they ask for them with the active filter.
func NewProgramService(repo repository.ResourceRepository[entity.Program], params ResourceServiceParams) usecase.ProgramUsecase {
	return newResourceService(repo, programPolicy, params)
}

func NewCoachService(repo repository.ResourceRepository[entity.Coach], params ResourceServiceParams) usecase.CoachUsecase {
	return newResourceService(repo, coachPolicy, params)
}

// NewTestimonialService builds the testimonial use case. The public only ever sees
// approved testimonials and cannot approve or feature its own submissions.
func NewTestimonialService(
	repo repository.ResourceRepository[entity.Testimonial],
	params ResourceServiceParams,
) usecase.TestimonialUsecase {
	return newResourceService(repo, testimonialPolicy, params)
}

func NewFacilityService(repo repository.ResourceRepository[entity.Facility], params ResourceServiceParams) usecase.FacilityUsecase {
	return newResourceService(repo, facilityPolicy, params)
}

func NewGalleryService(repo repository.ResourceRepository[entity.GalleryImage], params ResourceServiceParams) usecase.GalleryUsecase {
	return newResourceService(repo, galleryPolicy, params)
}

// NewContactService builds the contact message use case. Reading a message as an admin marks it read.
func NewContactService(
	repo repository.ResourceRepository[entity.ContactMessage],
	params ResourceServiceParams,
) usecase.ContactUsecase {
	return newResourceService(repo, contactPolicy, params)
}

// NewStudentService builds the student use case. Self registrations always start pending.
func NewStudentService(repo repository.ResourceRepository[entity.Student], params ResourceServiceParams) usecase.StudentUsecase {
	return newResourceService(repo, studentPolicy, params)
}

var programPolicy = &resourcePolicy[entity.Program, usecase.CreateProgramInput, usecase.UpdateProgramInput]{
	Name: "program",
	Filters: map[string]filterParam{
		"active":    {Column: repository.ColumnIsActive, Kind: filterBool},
		"age_group": {Column: repository.ColumnAgeGroup, Kind: filterString},
	},
	VisibilityColumn: repository.ColumnIsActive,
	VisibilityParam:  "active",
	IDOf:             func(p *entity.Program) uuid.UUID { return p.ID },
	Visible:          func(p *entity.Program) bool { return p.IsActive },
	Build: func(_ *entity.Principal, in *usecase.CreateProgramInput) (*entity.Program, error) {
		return &entity.Program{
			Title:       in.Title,
			Description: in.Description,
			AgeGroup:    in.AgeGroup,
			Schedule:    in.Schedule,
			Duration:    in.Duration,
			Price:       in.Price,
			MaxStudents: in.MaxStudents,
			ImageURL:    in.ImageURL,
			IsActive:    boolOr(in.IsActive, true),
		}, nil
	},
	Changes: func(in *usecase.UpdateProgramInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, "title", in.Title)
		setIfPresent(c, "description", in.Description)
		setIfPresent(c, repository.ColumnAgeGroup, in.AgeGroup)
		setIfPresent(c, "schedule", in.Schedule)
		setIfPresent(c, "duration", in.Duration)
		setIfPresent(c, "price", in.Price)
		setIfPresent(c, "max_students", in.MaxStudents)
		setIfPresent(c, "image_url", in.ImageURL)
		setIfPresent(c, repository.ColumnIsActive, in.IsActive)

		return c, nil
	},
}

var coachPolicy = &resourcePolicy[entity.Coach, usecase.CreateCoachInput, usecase.UpdateCoachInput]{
	Name: "coach",
	Filters: map[string]filterParam{
		"active":         {Column: repository.ColumnIsActive, Kind: filterBool},
		"specialization": {Column: repository.ColumnSpecialization, Kind: filterString},
	},
	VisibilityColumn: repository.ColumnIsActive,
	VisibilityParam:  "active",
	IDOf:             func(c *entity.Coach) uuid.UUID { return c.ID },
	Visible:          func(c *entity.Coach) bool { return c.IsActive },
	Build: func(_ *entity.Principal, in *usecase.CreateCoachInput) (*entity.Coach, error) {
		return &entity.Coach{
			Name:            in.Name,
			Title:           in.Title,
			Bio:             in.Bio,
			Specialization:  in.Specialization,
			ExperienceYears: in.ExperienceYears,
			ImageURL:        in.ImageURL,
			Email:           in.Email,
			Phone:           in.Phone,
			IsActive:        boolOr(in.IsActive, true),
		}, nil
	},
	Changes: func(in *usecase.UpdateCoachInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, "name", in.Name)
		setIfPresent(c, "title", in.Title)
		setIfPresent(c, "bio", in.Bio)
		setIfPresent(c, repository.ColumnSpecialization, in.Specialization)
		setIfPresent(c, "experience_years", in.ExperienceYears)
		setIfPresent(c, "image_url", in.ImageURL)
		setIfPresent(c, "email", in.Email)
		setIfPresent(c, "phone", in.Phone)
		setIfPresent(c, repository.ColumnIsActive, in.IsActive)

		return c, nil
	},
}

var testimonialPolicy = &resourcePolicy[entity.Testimonial, usecase.CreateTestimonialInput, usecase.UpdateTestimonialInput]{
	Name: "testimonial",
	Filters: map[string]filterParam{
		"featured": {Column: repository.ColumnIsFeatured, Kind: filterBool},
		"approved": {Column: repository.ColumnIsApproved, Kind: filterBool, AdminOnly: true},
	},
	// No VisibilityParam: the approval filter cannot be lifted by the public.
	VisibilityColumn: repository.ColumnIsApproved,
	IDOf:             func(t *entity.Testimonial) uuid.UUID { return t.ID },
	Visible:          func(t *entity.Testimonial) bool { return t.IsApproved },
	Build: func(viewer *entity.Principal, in *usecase.CreateTestimonialInput) (*entity.Testimonial, error) {
		t := &entity.Testimonial{
			StudentName: in.StudentName,
			ParentName:  in.ParentName,
			ProgramName: in.ProgramName,
			Content:     in.Content,
			Rating:      in.Rating,
			ImageURL:    in.ImageURL,
		}
		if viewer.IsAdmin() {
			t.IsApproved = boolOr(in.IsApproved, false)
			t.IsFeatured = boolOr(in.IsFeatured, false)
		}

		return t, nil
	},
	Changes: func(in *usecase.UpdateTestimonialInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, "student_name", in.StudentName)
		setIfPresent(c, "parent_name", in.ParentName)
		setIfPresent(c, "program_name", in.ProgramName)
		setIfPresent(c, "content", in.Content)
		setIfPresent(c, "rating", in.Rating)
		setIfPresent(c, "image_url", in.ImageURL)
		setIfPresent(c, repository.ColumnIsApproved, in.IsApproved)
		setIfPresent(c, repository.ColumnIsFeatured, in.IsFeatured)

		return c, nil
	},
	Submission: &submissionPolicy[entity.Testimonial]{
		Kind:    service.SubmissionTestimonial,
		Summary: func(t *entity.Testimonial) string { return t.StudentName },
	},
}

var facilityPolicy = &resourcePolicy[entity.Facility, usecase.CreateFacilityInput, usecase.UpdateFacilityInput]{
	Name: "facility",
	Filters: map[string]filterParam{
		"active": {Column: repository.ColumnIsActive, Kind: filterBool},
	},
	VisibilityColumn: repository.ColumnIsActive,
	VisibilityParam:  "active",
	IDOf:             func(f *entity.Facility) uuid.UUID { return f.ID },
	Visible:          func(f *entity.Facility) bool { return f.IsActive },
	Build: func(_ *entity.Principal, in *usecase.CreateFacilityInput) (*entity.Facility, error) {
		return &entity.Facility{
			Name:         in.Name,
			Description:  in.Description,
			ImageURL:     in.ImageURL,
			DisplayOrder: in.DisplayOrder,
			IsActive:     boolOr(in.IsActive, true),
		}, nil
	},
	Changes: func(in *usecase.UpdateFacilityInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, "name", in.Name)
		setIfPresent(c, "description", in.Description)
		setIfPresent(c, "image_url", in.ImageURL)
		setIfPresent(c, "display_order", in.DisplayOrder)
		setIfPresent(c, repository.ColumnIsActive, in.IsActive)

		return c, nil
	},
}

// Gallery images have no implicit visibility; callers filter on active themselves.
var galleryPolicy = &resourcePolicy[entity.GalleryImage, usecase.CreateGalleryImageInput, usecase.UpdateGalleryImageInput]{
	Name: "gallery image",
	Filters: map[string]filterParam{
		"active":   {Column: repository.ColumnIsActive, Kind: filterBool},
		"category": {Column: repository.ColumnCategory, Kind: filterString},
	},
	IDOf: func(g *entity.GalleryImage) uuid.UUID { return g.ID },
	Build: func(_ *entity.Principal, in *usecase.CreateGalleryImageInput) (*entity.GalleryImage, error) {
		return &entity.GalleryImage{
			Title:        in.Title,
			Description:  in.Description,
			ImageURL:     in.ImageURL,
			Category:     in.Category,
			DisplayOrder: in.DisplayOrder,
			IsActive:     boolOr(in.IsActive, true),
		}, nil
	},
	Changes: func(in *usecase.UpdateGalleryImageInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, "title", in.Title)
		setIfPresent(c, "description", in.Description)
		setIfPresent(c, "image_url", in.ImageURL)
		setIfPresent(c, repository.ColumnCategory, in.Category)
		setIfPresent(c, "display_order", in.DisplayOrder)
		setIfPresent(c, repository.ColumnIsActive, in.IsActive)

		return c, nil
	},
}

var contactPolicy = &resourcePolicy[entity.ContactMessage, usecase.CreateContactMessageInput, usecase.UpdateContactMessageInput]{
	Name: "contact message",
	Filters: map[string]filterParam{
		"read": {Column: repository.ColumnIsRead, Kind: filterBool},
	},
	AdminOnlyReads: true,
	IDOf:           func(m *entity.ContactMessage) uuid.UUID { return m.ID },
	Build: func(_ *entity.Principal, in *usecase.CreateContactMessageInput) (*entity.ContactMessage, error) {
		return &entity.ContactMessage{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   in.Phone,
			Subject: in.Subject,
			Message: in.Message,
		}, nil
	},
	Changes: func(in *usecase.UpdateContactMessageInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, repository.ColumnIsRead, in.IsRead)

		return c, nil
	},
	OnAdminGet: func(m *entity.ContactMessage) map[string]any {
		if m.IsRead {
			return nil
		}

		return map[string]any{repository.ColumnIsRead: true}
	},
	Submission: &submissionPolicy[entity.ContactMessage]{
		Kind:    service.SubmissionContact,
		Summary: func(m *entity.ContactMessage) string { return m.Name + ": " + m.Subject },
	},
}

var studentPolicy = &resourcePolicy[entity.Student, usecase.CreateStudentInput, usecase.UpdateStudentInput]{
	Name: "student",
	Filters: map[string]filterParam{
		"status":     {Column: repository.ColumnStatus, Kind: filterStudentStatus},
		"program_id": {Column: repository.ColumnProgramID, Kind: filterUUID},
	},
	AdminOnlyReads: true,
	IDOf:           func(s *entity.Student) uuid.UUID { return s.ID },
	Build: func(viewer *entity.Principal, in *usecase.CreateStudentInput) (*entity.Student, error) {
		dob, err := parseDate(in.DateOfBirth)
		if err != nil {
			return nil, err
		}

		status := entity.StudentStatusPending
		if viewer.IsAdmin() && in.Status != "" {
			status = entity.StudentStatus(in.Status)
		}

		return &entity.Student{
			Name:        in.Name,
			DateOfBirth: dob,
			ParentName:  in.ParentName,
			ParentPhone: in.ParentPhone,
			ParentEmail: in.ParentEmail,
			ProgramID:   in.ProgramID,
			Notes:       in.Notes,
			Status:      status,
		}, nil
	},
	Changes: func(in *usecase.UpdateStudentInput) (map[string]any, error) {
		c := changeSet{}
		setIfPresent(c, "name", in.Name)
		setIfPresent(c, "parent_name", in.ParentName)
		setIfPresent(c, "parent_phone", in.ParentPhone)
		setIfPresent(c, "parent_email", in.ParentEmail)
		setIfPresent(c, repository.ColumnProgramID, in.ProgramID)
		setIfPresent(c, "notes", in.Notes)
		setIfPresent(c, repository.ColumnStatus, in.Status)

		if in.DateOfBirth != nil {
			dob, err := parseDate(*in.DateOfBirth)
			if err != nil {
				return nil, err
			}
			// An empty string clears the date.
			c["date_of_birth"] = dob
		}

		return c, nil
	},
	Submission: &submissionPolicy[entity.Student]{
		Kind:    service.SubmissionRegistration,
		Summary: func(s *entity.Student) string { return s.Name + " (" + s.ParentName + ")" },
	},
}

// changeSet collects column changes for a partial update.
type changeSet map[string]any

func setIfPresent[T any](c changeSet, column string, value *T) {
	if value != nil {
		c[column] = *value
	}
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date_of_birth: datetime=" + dateLayout)
	}

	return &t, nil
}
