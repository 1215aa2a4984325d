package handler

import (
	"net/http"

	"academy/internal/delivery/api/response"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ResourceHandler exposes the CRUD routes of one content entity.
type ResourceHandler[E any, C any, U any] struct {
	uc   usecase.ResourceUsecase[E, C, U]
	name string
}

// Concrete handlers, one per entity, so Fx can tell them apart.
type (
	ProgramHandler     = ResourceHandler[entity.Program, usecase.CreateProgramInput, usecase.UpdateProgramInput]
	CoachHandler       = ResourceHandler[entity.Coach, usecase.CreateCoachInput, usecase.UpdateCoachInput]
	TestimonialHandler = ResourceHandler[entity.Testimonial, usecase.CreateTestimonialInput, usecase.UpdateTestimonialInput]
	FacilityHandler    = ResourceHandler[entity.Facility, usecase.CreateFacilityInput, usecase.UpdateFacilityInput]
	GalleryHandler     = ResourceHandler[entity.GalleryImage, usecase.CreateGalleryImageInput, usecase.UpdateGalleryImageInput]
	ContactHandler     = ResourceHandler[entity.ContactMessage, usecase.CreateContactMessageInput, usecase.UpdateContactMessageInput]
	StudentHandler     = ResourceHandler[entity.Student, usecase.CreateStudentInput, usecase.UpdateStudentInput]
)

// NewResourceHandler builds a handler; name is used in confirmation messages.
func NewResourceHandler[E any, C any, U any](uc usecase.ResourceUsecase[E, C, U], name string) *ResourceHandler[E, C, U] {
	return &ResourceHandler[E, C, U]{uc: uc, name: name}
}

func NewProgramHandler(uc usecase.ProgramUsecase) *ProgramHandler {
	return NewResourceHandler(uc, "Program")
}

func NewCoachHandler(uc usecase.CoachUsecase) *CoachHandler {
	return NewResourceHandler(uc, "Coach")
}

func NewTestimonialHandler(uc usecase.TestimonialUsecase) *TestimonialHandler {
	return NewResourceHandler(uc, "Testimonial")
}

func NewFacilityHandler(uc usecase.FacilityUsecase) *FacilityHandler {
	return NewResourceHandler(uc, "Facility")
}

func NewGalleryHandler(uc usecase.GalleryUsecase) *GalleryHandler {
	return NewResourceHandler(uc, "Gallery image")
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return NewResourceHandler(uc, "Contact message")
}

func NewStudentHandler(uc usecase.StudentUsecase) *StudentHandler {
	return NewResourceHandler(uc, "Student")
}

// List handles GET /{resource}. Every query parameter other than page and limit
// is passed on as a filter; the use case decides which ones it understands.
func (h *ResourceHandler[E, C, U]) List(c echo.Context) error {
	query := c.QueryParams()

	pagination, err := usecase.ParsePagination(query.Get("page"), query.Get("limit"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filters := make(map[string]string, len(query))
	for key := range query {
		if key == "page" || key == "limit" {
			continue
		}
		filters[key] = query.Get(key)
	}

	result, err := h.uc.List(c.Request().Context(), deliverycontext.GetPrincipal(c), usecase.ListParams{
		Pagination: pagination,
		Filters:    filters,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result)
}

// Get handles GET /{resource}/:id
func (h *ResourceHandler[E, C, U]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.uc.Get(c.Request().Context(), deliverycontext.GetPrincipal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// Create handles POST /{resource}
func (h *ResourceHandler[E, C, U]) Create(c echo.Context) error {
	input := new(C)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "request body must be a JSON object with the documented fields")
	}

	record, err := h.uc.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, h.name+" created", record)
}

// Update handles PUT /{resource}/:id. Absent fields are left unchanged.
func (h *ResourceHandler[E, C, U]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := new(U)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "request body must be a JSON object with the documented fields")
	}

	record, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, h.name+" updated", record)
}

// Delete handles DELETE /{resource}/:id
func (h *ResourceHandler[E, C, U]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, h.name+" deleted", nil)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrBadRequest.WithDetails("id must be a UUID")
	}

	return id, nil
}
