package postgres

import (
	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewProgramRepository returns the generic repository bound to the programs table.
func NewProgramRepository(db *gorm.DB) repository.ResourceRepository[entity.Program] {
	return newResourceRepository(db, repository.ProgramSchema, toProgramDomain, fromProgramDomain,
		func(m *model.ProgramModel) uuid.UUID { return m.ID })
}

func NewCoachRepository(db *gorm.DB) repository.ResourceRepository[entity.Coach] {
	return newResourceRepository(db, repository.CoachSchema, toCoachDomain, fromCoachDomain,
		func(m *model.CoachModel) uuid.UUID { return m.ID })
}

func NewTestimonialRepository(db *gorm.DB) repository.ResourceRepository[entity.Testimonial] {
	return newResourceRepository(db, repository.TestimonialSchema, toTestimonialDomain, fromTestimonialDomain,
		func(m *model.TestimonialModel) uuid.UUID { return m.ID })
}

func NewFacilityRepository(db *gorm.DB) repository.ResourceRepository[entity.Facility] {
	return newResourceRepository(db, repository.FacilitySchema, toFacilityDomain, fromFacilityDomain,
		func(m *model.FacilityModel) uuid.UUID { return m.ID })
}

func NewGalleryRepository(db *gorm.DB) repository.ResourceRepository[entity.GalleryImage] {
	return newResourceRepository(db, repository.GallerySchema, toGalleryDomain, fromGalleryDomain,
		func(m *model.GalleryImageModel) uuid.UUID { return m.ID })
}

func NewContactRepository(db *gorm.DB) repository.ResourceRepository[entity.ContactMessage] {
	return newResourceRepository(db, repository.ContactSchema, toContactDomain, fromContactDomain,
		func(m *model.ContactMessageModel) uuid.UUID { return m.ID })
}

func NewStudentRepository(db *gorm.DB) repository.ResourceRepository[entity.Student] {
	return newResourceRepository(db, repository.StudentSchema, toStudentDomain, fromStudentDomain,
		func(m *model.StudentModel) uuid.UUID { return m.ID })
}

func toProgramDomain(m *model.ProgramModel) *entity.Program {
	return &entity.Program{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		AgeGroup:    m.AgeGroup,
		Schedule:    m.Schedule,
		Duration:    m.Duration,
		Price:       m.Price,
		MaxStudents: m.MaxStudents,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProgramDomain(e *entity.Program) *model.ProgramModel {
	return &model.ProgramModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		AgeGroup:    e.AgeGroup,
		Schedule:    e.Schedule,
		Duration:    e.Duration,
		Price:       e.Price,
		MaxStudents: e.MaxStudents,
		ImageURL:    e.ImageURL,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toCoachDomain(m *model.CoachModel) *entity.Coach {
	return &entity.Coach{
		ID:              m.ID,
		Name:            m.Name,
		Title:           m.Title,
		Bio:             m.Bio,
		Specialization:  m.Specialization,
		ExperienceYears: m.ExperienceYears,
		ImageURL:        m.ImageURL,
		Email:           m.Email,
		Phone:           m.Phone,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromCoachDomain(e *entity.Coach) *model.CoachModel {
	return &model.CoachModel{
		ID:              e.ID,
		Name:            e.Name,
		Title:           e.Title,
		Bio:             e.Bio,
		Specialization:  e.Specialization,
		ExperienceYears: e.ExperienceYears,
		ImageURL:        e.ImageURL,
		Email:           e.Email,
		Phone:           e.Phone,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toTestimonialDomain(m *model.TestimonialModel) *entity.Testimonial {
	return &entity.Testimonial{
		ID:          m.ID,
		StudentName: m.StudentName,
		ParentName:  m.ParentName,
		ProgramName: m.ProgramName,
		Content:     m.Content,
		Rating:      m.Rating,
		ImageURL:    m.ImageURL,
		IsApproved:  m.IsApproved,
		IsFeatured:  m.IsFeatured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromTestimonialDomain(e *entity.Testimonial) *model.TestimonialModel {
	return &model.TestimonialModel{
		ID:          e.ID,
		StudentName: e.StudentName,
		ParentName:  e.ParentName,
		ProgramName: e.ProgramName,
		Content:     e.Content,
		Rating:      e.Rating,
		ImageURL:    e.ImageURL,
		IsApproved:  e.IsApproved,
		IsFeatured:  e.IsFeatured,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toFacilityDomain(m *model.FacilityModel) *entity.Facility {
	return &entity.Facility{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromFacilityDomain(e *entity.Facility) *model.FacilityModel {
	return &model.FacilityModel{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		ImageURL:     e.ImageURL,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toGalleryDomain(m *model.GalleryImageModel) *entity.GalleryImage {
	return &entity.GalleryImage{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Category:     m.Category,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromGalleryDomain(e *entity.GalleryImage) *model.GalleryImageModel {
	return &model.GalleryImageModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		ImageURL:     e.ImageURL,
		Category:     e.Category,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toContactDomain(m *model.ContactMessageModel) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromContactDomain(e *entity.ContactMessage) *model.ContactMessageModel {
	return &model.ContactMessageModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Subject:   e.Subject,
		Message:   e.Message,
		IsRead:    e.IsRead,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toStudentDomain(m *model.StudentModel) *entity.Student {
	return &entity.Student{
		ID:          m.ID,
		Name:        m.Name,
		DateOfBirth: m.DateOfBirth,
		ParentName:  m.ParentName,
		ParentPhone: m.ParentPhone,
		ParentEmail: m.ParentEmail,
		ProgramID:   m.ProgramID,
		Notes:       m.Notes,
		Status:      entity.StudentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromStudentDomain(e *entity.Student) *model.StudentModel {
	return &model.StudentModel{
		ID:          e.ID,
		Name:        e.Name,
		DateOfBirth: e.DateOfBirth,
		ParentName:  e.ParentName,
		ParentPhone: e.ParentPhone,
		ParentEmail: e.ParentEmail,
		ProgramID:   e.ProgramID,
		Notes:       e.Notes,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
