package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resourceFixtures[E any] struct {
	repo      *mockRepo.MockResourceRepository[E]
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
	params    ResourceServiceParams
}

func newResourceFixtures[E any](t *testing.T) resourceFixtures[E] {
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	return resourceFixtures[E]{
		repo:      mockRepo.NewMockResourceRepository[E](t),
		publisher: publisher,
		metrics:   metrics,
		params: ResourceServiceParams{
			Publisher: publisher,
			Metrics:   metrics,
			Logger:    newDiscardLogger(),
		},
	}
}

var (
	adminViewer = &entity.Principal{ID: uuid.New(), Username: "admin", Role: entity.RoleAdmin}
	firstPage   = usecase.Pagination{Page: 1, Limit: 10}
)

func TestResourceService_List_PublicSeesActiveOnly(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)
	ctx := context.Background()

	fx.repo.EXPECT().
		List(ctx, repository.ListQuery{Filters: map[string]any{repository.ColumnIsActive: true}, Page: 1, Limit: 10}).
		Return([]*entity.Program{{Title: "Swim"}}, 21, nil)

	page, err := srv.List(ctx, nil, usecase.ListParams{Pagination: firstPage})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestResourceService_List_ExplicitActiveOverridesVisibility(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)
	ctx := context.Background()

	fx.repo.EXPECT().
		List(ctx, repository.ListQuery{
			Filters: map[string]any{repository.ColumnIsActive: false, repository.ColumnAgeGroup: "5-7"},
			Page:    2,
			Limit:   5,
		}).
		Return(nil, 0, nil)

	page, err := srv.List(ctx, nil, usecase.ListParams{
		Pagination: usecase.Pagination{Page: 2, Limit: 5},
		Filters:    map[string]string{"active": "false", "age_group": "5-7", "unknown": "x"},
	})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
}

func TestResourceService_List_AdminSeesEverything(t *testing.T) {
	fx := newResourceFixtures[entity.Coach](t)
	srv := NewCoachService(fx.repo, fx.params)
	ctx := context.Background()

	fx.repo.EXPECT().
		List(ctx, repository.ListQuery{Filters: map[string]any{}, Page: 1, Limit: 10}).
		Return(nil, 0, nil)

	_, err := srv.List(ctx, adminViewer, usecase.ListParams{Pagination: firstPage})

	require.NoError(t, err)
}

func TestResourceService_List_TestimonialApprovalIsStrict(t *testing.T) {
	fx := newResourceFixtures[entity.Testimonial](t)
	srv := NewTestimonialService(fx.repo, fx.params)
	ctx := context.Background()

	fx.repo.EXPECT().
		List(ctx, repository.ListQuery{
			Filters: map[string]any{repository.ColumnIsApproved: true, repository.ColumnIsFeatured: true},
			Page:    1,
			Limit:   10,
		}).
		Return(nil, 0, nil)

	_, err := srv.List(ctx, nil, usecase.ListParams{
		Pagination: firstPage,
		Filters:    map[string]string{"approved": "false", "featured": "true"},
	})

	require.NoError(t, err)
}

func TestResourceService_List_AdminMayFilterUnapproved(t *testing.T) {
	fx := newResourceFixtures[entity.Testimonial](t)
	srv := NewTestimonialService(fx.repo, fx.params)
	ctx := context.Background()

	fx.repo.EXPECT().
		List(ctx, repository.ListQuery{Filters: map[string]any{repository.ColumnIsApproved: false}, Page: 1, Limit: 10}).
		Return(nil, 0, nil)

	_, err := srv.List(ctx, adminViewer, usecase.ListParams{
		Pagination: firstPage,
		Filters:    map[string]string{"approved": "false"},
	})

	require.NoError(t, err)
}

func TestResourceService_List_RejectsMalformedFilter(t *testing.T) {
	fx := newResourceFixtures[entity.Student](t)
	srv := NewStudentService(fx.repo, fx.params)

	tests := map[string]string{
		"program_id": "not-a-uuid",
		"status":     "graduated",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := srv.List(context.Background(), adminViewer, usecase.ListParams{
				Pagination: firstPage,
				Filters:    map[string]string{name: value},
			})

			requireAppError(t, err, http.StatusBadRequest, "BAD_REQUEST")
		})
	}
}

func TestResourceService_AdminOnlyReads(t *testing.T) {
	fx := newResourceFixtures[entity.ContactMessage](t)
	srv := NewContactService(fx.repo, fx.params)

	_, err := srv.List(context.Background(), nil, usecase.ListParams{Pagination: firstPage})
	requireAppError(t, err, http.StatusForbidden, "FORBIDDEN")

	_, err = srv.Get(context.Background(), nil, uuid.New())
	requireAppError(t, err, http.StatusForbidden, "FORBIDDEN")
}

func TestResourceService_Get_HiddenFromPublic(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)
	ctx := context.Background()
	id := uuid.New()
	inactive := &entity.Program{ID: id, Title: "Old", IsActive: false}

	fx.repo.EXPECT().FindByID(ctx, id).Return(inactive, nil).Times(2)

	_, err := srv.Get(ctx, nil, id)
	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")

	got, err := srv.Get(ctx, adminViewer, id)
	require.NoError(t, err)
	assert.Equal(t, inactive, got)
}

func TestResourceService_Get_NotFound(t *testing.T) {
	fx := newResourceFixtures[entity.Facility](t)
	srv := NewFacilityService(fx.repo, fx.params)
	id := uuid.New()

	fx.repo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrRecordNotFound)

	_, err := srv.Get(context.Background(), adminViewer, id)

	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestResourceService_Get_ContactMarkedRead(t *testing.T) {
	fx := newResourceFixtures[entity.ContactMessage](t)
	srv := NewContactService(fx.repo, fx.params)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(&entity.ContactMessage{ID: id, IsRead: false}, nil)
	fx.repo.EXPECT().
		Update(ctx, id, map[string]any{repository.ColumnIsRead: true}).
		Return(&entity.ContactMessage{ID: id, IsRead: true}, nil)

	got, err := srv.Get(ctx, adminViewer, id)

	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestResourceService_Get_ContactAlreadyReadIsNotWritten(t *testing.T) {
	fx := newResourceFixtures[entity.ContactMessage](t)
	srv := NewContactService(fx.repo, fx.params)
	id := uuid.New()

	fx.repo.EXPECT().FindByID(mock.Anything, id).Return(&entity.ContactMessage{ID: id, IsRead: true}, nil)

	got, err := srv.Get(context.Background(), adminViewer, id)

	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestResourceService_Create_RejectsInvalidRating(t *testing.T) {
	fx := newResourceFixtures[entity.Testimonial](t)
	srv := NewTestimonialService(fx.repo, fx.params)

	_, err := srv.Create(context.Background(), nil, &usecase.CreateTestimonialInput{
		StudentName: "Sam",
		Content:     "Great",
		Rating:      6,
	})

	appErr := requireAppError(t, err, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, appErr.Details(), "rating: max=5")
}

func TestResourceService_Create_RequiredFieldsReported(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)

	_, err := srv.Create(context.Background(), adminViewer, &usecase.CreateProgramInput{Price: -1})

	appErr := requireAppError(t, err, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, appErr.Details(), "title: required")
	assert.Contains(t, appErr.Details(), "description: required")
	assert.Contains(t, appErr.Details(), "price: gte=0")
}

func TestResourceService_Create_PublicTestimonialIsModerated(t *testing.T) {
	fx := newResourceFixtures[entity.Testimonial](t)
	srv := NewTestimonialService(fx.repo, fx.params)
	ctx := context.Background()
	approve := true
	createdID := uuid.New()

	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(t *entity.Testimonial) bool { return !t.IsApproved && !t.IsFeatured })).
		RunAndReturn(func(_ context.Context, t *entity.Testimonial) (*entity.Testimonial, error) {
			stored := *t
			stored.ID = createdID

			return &stored, nil
		})
	fx.metrics.EXPECT().RecordSubmission(service.SubmissionTestimonial).Return()
	fx.publisher.EXPECT().
		PublishSubmissionEvent(ctx, mock.MatchedBy(func(e *service.SubmissionEvent) bool {
			return e.Kind == service.SubmissionTestimonial && e.RecordID == createdID.String() && e.Summary == "Sam"
		})).
		Return(nil)

	created, err := srv.Create(ctx, nil, &usecase.CreateTestimonialInput{
		StudentName: "Sam",
		Content:     "Great coaches",
		Rating:      5,
		IsApproved:  &approve,
		IsFeatured:  &approve,
	})

	require.NoError(t, err)
	assert.False(t, created.IsApproved)
	assert.False(t, created.IsFeatured)
}

func TestResourceService_Create_AdminTestimonialKeepsFlagsWithoutEvent(t *testing.T) {
	fx := newResourceFixtures[entity.Testimonial](t)
	srv := NewTestimonialService(fx.repo, fx.params)
	approve := true

	fx.repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(t *entity.Testimonial) bool { return t.IsApproved && !t.IsFeatured })).
		RunAndReturn(func(_ context.Context, t *entity.Testimonial) (*entity.Testimonial, error) { return t, nil })

	_, err := srv.Create(context.Background(), adminViewer, &usecase.CreateTestimonialInput{
		StudentName: "Sam",
		Content:     "Great coaches",
		Rating:      4,
		IsApproved:  &approve,
	})

	require.NoError(t, err)
}

func TestResourceService_Create_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := newResourceFixtures[entity.ContactMessage](t)
	srv := NewContactService(fx.repo, fx.params)

	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, m *entity.ContactMessage) (*entity.ContactMessage, error) {
			m.ID = uuid.New()

			return m, nil
		})
	fx.metrics.EXPECT().RecordSubmission(service.SubmissionContact).Return()
	fx.publisher.EXPECT().PublishSubmissionEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	created, err := srv.Create(context.Background(), nil, &usecase.CreateContactMessageInput{
		Name:    "Pat",
		Email:   "pat@example.com",
		Message: "Do you run weekend classes?",
	})

	require.NoError(t, err)
	assert.False(t, created.IsRead)
}

func TestResourceService_Create_PublicStudentStartsPending(t *testing.T) {
	fx := newResourceFixtures[entity.Student](t)
	srv := NewStudentService(fx.repo, fx.params)
	programID := uuid.New()

	fx.repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.Student) bool {
			return s.Status == entity.StudentStatusPending &&
				s.DateOfBirth != nil && s.DateOfBirth.Equal(time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC)) &&
				s.ProgramID != nil && *s.ProgramID == programID
		})).
		RunAndReturn(func(_ context.Context, s *entity.Student) (*entity.Student, error) { return s, nil })
	fx.metrics.EXPECT().RecordSubmission(service.SubmissionRegistration).Return()
	fx.publisher.EXPECT().PublishSubmissionEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := srv.Create(context.Background(), nil, &usecase.CreateStudentInput{
		Name:        "Kim",
		DateOfBirth: "2015-04-02",
		ParentName:  "Lee",
		ParentPhone: "555-0100",
		ProgramID:   &programID,
		Status:      string(entity.StudentStatusActive),
	})

	require.NoError(t, err)
}

func TestResourceService_Create_ForeignKeyViolation(t *testing.T) {
	fx := newResourceFixtures[entity.Student](t)
	srv := NewStudentService(fx.repo, fx.params)

	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, repository.ErrConstraintViolation)

	_, err := srv.Create(context.Background(), adminViewer, &usecase.CreateStudentInput{
		Name: "Kim", ParentName: "Lee", ParentPhone: "555-0100",
	})

	requireAppError(t, err, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestResourceService_Update_OnlySuppliedFields(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)
	ctx := context.Background()
	id := uuid.New()
	title := "Junior Swim"

	fx.repo.EXPECT().
		Update(ctx, id, map[string]any{"title": title}).
		Return(&entity.Program{ID: id, Title: title, Description: "unchanged"}, nil)

	got, err := srv.Update(ctx, id, &usecase.UpdateProgramInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "unchanged", got.Description)
}

func TestResourceService_Update_EmptyChangeSet(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)

	_, err := srv.Update(context.Background(), uuid.New(), &usecase.UpdateProgramInput{})

	requireAppError(t, err, http.StatusBadRequest, "NO_FIELDS_TO_UPDATE")
}

func TestResourceService_Update_ValidatesSuppliedFields(t *testing.T) {
	fx := newResourceFixtures[entity.Testimonial](t)
	srv := NewTestimonialService(fx.repo, fx.params)
	rating := 0

	_, err := srv.Update(context.Background(), uuid.New(), &usecase.UpdateTestimonialInput{Rating: &rating})

	requireAppError(t, err, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestResourceService_Update_StudentClearsDateOfBirth(t *testing.T) {
	fx := newResourceFixtures[entity.Student](t)
	srv := NewStudentService(fx.repo, fx.params)
	id := uuid.New()
	empty := ""

	fx.repo.EXPECT().
		Update(mock.Anything, id, map[string]any{"date_of_birth": (*time.Time)(nil)}).
		Return(&entity.Student{ID: id}, nil)

	_, err := srv.Update(context.Background(), id, &usecase.UpdateStudentInput{DateOfBirth: &empty})

	require.NoError(t, err)
}

func TestResourceService_Update_NotFound(t *testing.T) {
	fx := newResourceFixtures[entity.GalleryImage](t)
	srv := NewGalleryService(fx.repo, fx.params)
	id := uuid.New()
	category := "events"

	fx.repo.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, repository.ErrRecordNotFound)

	_, err := srv.Update(context.Background(), id, &usecase.UpdateGalleryImageInput{Category: &category})

	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestResourceService_Delete(t *testing.T) {
	fx := newResourceFixtures[entity.Coach](t)
	srv := NewCoachService(fx.repo, fx.params)
	missing, broken, ok := uuid.New(), uuid.New(), uuid.New()

	fx.repo.EXPECT().Delete(mock.Anything, missing).Return(repository.ErrRecordNotFound)
	fx.repo.EXPECT().Delete(mock.Anything, broken).Return(errors.New("pq: connection refused"))
	fx.repo.EXPECT().Delete(mock.Anything, ok).Return(nil)

	requireAppError(t, srv.Delete(context.Background(), missing), http.StatusNotFound, "NOT_FOUND")

	appErr := requireAppError(t, srv.Delete(context.Background(), broken), http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.NotContains(t, appErr.Message(), "pq")

	require.NoError(t, srv.Delete(context.Background(), ok))
}

func TestResourceService_DatabaseFailureKeepsItsCode(t *testing.T) {
	fx := newResourceFixtures[entity.Program](t)
	srv := NewProgramService(fx.repo, fx.params)
	id := uuid.New()
	driverErr := errors.New("pq: connection reset by peer")

	fx.repo.EXPECT().FindByID(mock.Anything, id).Return(nil, domainerrors.NewDatabaseExecuteError(driverErr, "find programs"))

	_, err := srv.Get(context.Background(), nil, id)

	appErr := requireAppError(t, err, http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED")
	assert.NotContains(t, appErr.Message(), "pq")
	assert.ErrorIs(t, err, driverErr)
}
