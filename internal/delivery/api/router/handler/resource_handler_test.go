package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"
	mockUC "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type programUsecaseMock = mockUC.MockResourceUsecase[entity.Program, usecase.CreateProgramInput, usecase.UpdateProgramInput]

func createTestProgramHandler(t *testing.T) (*ProgramHandler, *programUsecaseMock) {
	uc := mockUC.NewMockResourceUsecase[entity.Program, usecase.CreateProgramInput, usecase.UpdateProgramInput](t)

	return NewProgramHandler(uc), uc
}

func TestResourceHandler_List_PassesPaginationAndFilters(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/programs?page=2&limit=5&active=false&age_group=kids", nil, "")

	program := &entity.Program{ID: uuid.New(), Title: "Junior Squad"}
	uc.EXPECT().List(mock.Anything, (*entity.Principal)(nil), usecase.ListParams{
		Pagination: usecase.Pagination{Page: 2, Limit: 5},
		Filters:    map[string]string{"active": "false", "age_group": "kids"},
	}).Return(usecase.NewPageResult([]*entity.Program{program}, 6, usecase.Pagination{Page: 2, Limit: 5}), nil)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var page struct {
		Items      []entity.Program `json:"items"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Junior Squad", page.Items[0].Title)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 5, page.Pagination.Limit)
	assert.Equal(t, int64(6), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestResourceHandler_List_RejectsBadPagination(t *testing.T) {
	h, _ := createTestProgramHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/programs?page=0", nil, "")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "INVALID_PAGINATION", env.Error.Code)
}

func TestResourceHandler_Get_MalformedID(t *testing.T) {
	h, _ := createTestProgramHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/programs/abc", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, rec).Error.Code)
}

func TestResourceHandler_Get_PassesViewer(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	id := uuid.New()
	viewer := adminPrincipal()
	c, rec := newTestContext(http.MethodGet, "/api/programs/"+id.String(), nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	deliverycontext.SetPrincipal(c, viewer)

	uc.EXPECT().Get(mock.Anything, viewer, id).Return(&entity.Program{ID: id, Title: "Adults"}, nil)

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var program entity.Program
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &program))
	assert.Equal(t, id, program.ID)
}

func TestResourceHandler_Create_BindsBody(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/api/programs", `{"title":"Summer Camp","price":120,"is_active":false}`)

	uc.EXPECT().Create(mock.Anything, (*entity.Principal)(nil), mock.MatchedBy(func(in *usecase.CreateProgramInput) bool {
		return in.Title == "Summer Camp" && in.IsActive != nil && !*in.IsActive
	})).Return(&entity.Program{ID: uuid.New(), Title: "Summer Camp"}, nil)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Program created", env.Message)
}

func TestResourceHandler_Create_MalformedJSON(t *testing.T) {
	h, _ := createTestProgramHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/api/programs", `{"title":`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, rec).Error.Code)
}

func TestResourceHandler_Create_ValidationDetailsAreReturned(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/api/programs", `{}`)

	uc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("title: required"))

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "title: required", env.Error.Details)
}

func TestResourceHandler_Update_OnlySuppliedFields(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodPut, "/api/programs/"+id.String(), `{"price":99.5}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateProgramInput) bool {
		return in.Title == nil && in.Price != nil && *in.Price == 99.5
	})).Return(&entity.Program{ID: id}, nil)

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Program updated", decodeEnvelope(t, rec).Message)
}

func TestResourceHandler_Update_NotFound(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodPut, "/api/programs/"+id.String(), `{"title":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrNotFound, "program"))

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestResourceHandler_Delete(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/api/programs/"+id.String(), nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.EXPECT().Delete(mock.Anything, id).Return(nil)

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Program deleted", env.Message)
	assert.Empty(t, env.Data)
}

func TestResourceHandler_InternalErrorsAreNotRendered(t *testing.T) {
	h, uc := createTestProgramHandler(t)
	id := uuid.New()
	c, _ := newTestContext(http.MethodDelete, "/api/programs/"+id.String(), nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.EXPECT().Delete(mock.Anything, id).Return(errors.New("boom"))

	// Left for the HTTPErrorHandler, which logs it and answers 500.
	assert.Error(t, h.Delete(c))
}
