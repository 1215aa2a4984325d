package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// filterKind selects how a raw query value is parsed before it reaches the repository.
type filterKind int

const (
	filterBool filterKind = iota
	filterString
	filterUUID
	filterStudentStatus
)

// filterParam maps a query parameter onto a whitelisted column.
type filterParam struct {
	Column string
	Kind   filterKind
	// AdminOnly parameters are ignored for anyone else.
	AdminOnly bool
}

func (fp filterParam) parse(name, raw string) (any, error) {
	switch fp.Kind {
	case filterBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domainerrors.ErrBadRequest.WithDetails(name + " must be true or false")
		}

		return v, nil
	case filterUUID:
		v, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.ErrBadRequest.WithDetails(name + " must be a UUID")
		}

		return v, nil
	case filterStudentStatus:
		status := entity.StudentStatus(raw)
		if !status.IsValid() {
			return nil, domainerrors.ErrBadRequest.WithDetails(name + " must be one of pending, active, inactive")
		}

		return string(status), nil
	default:
		return raw, nil
	}
}

// submissionPolicy describes the event published when the public creates a record.
type submissionPolicy[E any] struct {
	Kind    string
	Summary func(record *E) string
}

// resourcePolicy holds everything that differs between content entities.
type resourcePolicy[E any, C any, U any] struct {
	Name string
	// Filters maps query parameter names to columns.
	Filters map[string]filterParam
	// VisibilityColumn is forced to true for non-admin lists. Empty means no implicit visibility.
	VisibilityColumn string
	// VisibilityParam, when set, lets a non-admin caller override the forced value
	// by passing that query parameter explicitly.
	VisibilityParam string
	// AdminOnlyReads rejects list and get for non-admins.
	AdminOnlyReads bool

	IDOf func(record *E) uuid.UUID
	// Visible reports whether a non-admin may read the record. Nil means always.
	Visible func(record *E) bool
	// Build turns validated input into a new record. viewer is nil for public submissions.
	Build func(viewer *entity.Principal, input *C) (*E, error)
	// Changes returns the column changes carried by a partial update.
	Changes func(input *U) (map[string]any, error)
	// OnAdminGet returns changes applied when an admin reads the record. Nil or empty means none.
	OnAdminGet func(record *E) map[string]any
	// Submission is set for entities the public can create.
	Submission *submissionPolicy[E]
}

// resourceService implements ResourceUsecase for any entity described by a resourcePolicy.
type resourceService[E any, C any, U any] struct {
	repo      repository.ResourceRepository[E]
	policy    *resourcePolicy[E, C, U]
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// ResourceServiceParams holds the dependencies shared by every resource service, injected by Fx.
type ResourceServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

func newResourceService[E any, C any, U any](
	repo repository.ResourceRepository[E],
	policy *resourcePolicy[E, C, U],
	params ResourceServiceParams,
) *resourceService[E, C, U] {
	return &resourceService[E, C, U]{
		repo:      repo,
		policy:    policy,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *resourceService[E, C, U]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("resource", srv.policy.Name))
}

// List returns one page of records the viewer may see.
func (srv *resourceService[E, C, U]) List(
	ctx context.Context,
	viewer *entity.Principal,
	params usecase.ListParams,
) (*usecase.PageResult[E], error) {
	isAdmin := viewer.IsAdmin()
	if srv.policy.AdminOnlyReads && !isAdmin {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "listing %s requires an admin", srv.policy.Name)
	}

	filters, err := srv.buildFilters(isAdmin, params.Filters)
	if err != nil {
		return nil, err
	}

	page := params.Pagination
	if page.Page < 1 {
		page.Page = usecase.DefaultPage
	}
	if page.Limit < 1 {
		page.Limit = usecase.DefaultLimit
	}

	query := repository.ListQuery{
		Filters: filters,
		Page:    page.Page,
		Limit:   page.Limit,
	}

	records, total, err := srv.repo.List(ctx, query)
	if err != nil {
		return nil, srv.translate(ctx, err, "list")
	}

	return usecase.NewPageResult(records, total, page), nil
}

func (srv *resourceService[E, C, U]) buildFilters(isAdmin bool, raw map[string]string) (map[string]any, error) {
	filters := make(map[string]any, len(raw)+1)
	explicitVisibility := false

	for name, value := range raw {
		fp, ok := srv.policy.Filters[name]
		if !ok || value == "" {
			continue
		}
		if fp.AdminOnly && !isAdmin {
			continue
		}

		parsed, err := fp.parse(name, value)
		if err != nil {
			return nil, err
		}
		filters[fp.Column] = parsed

		if name == srv.policy.VisibilityParam {
			explicitVisibility = true
		}
	}

	if srv.policy.VisibilityColumn != "" && !isAdmin && !explicitVisibility {
		filters[srv.policy.VisibilityColumn] = true
	}

	return filters, nil
}

// Get returns one record. Hidden records look missing to non-admins.
func (srv *resourceService[E, C, U]) Get(ctx context.Context, viewer *entity.Principal, id uuid.UUID) (*E, error) {
	isAdmin := viewer.IsAdmin()
	if srv.policy.AdminOnlyReads && !isAdmin {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "reading %s requires an admin", srv.policy.Name)
	}

	record, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.translate(ctx, err, "get")
	}

	if !isAdmin {
		if srv.policy.Visible != nil && !srv.policy.Visible(record) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "%s %s is hidden", srv.policy.Name, id)
		}

		return record, nil
	}

	if srv.policy.OnAdminGet == nil {
		return record, nil
	}

	changes := srv.policy.OnAdminGet(record)
	if len(changes) == 0 {
		return record, nil
	}

	updated, err := srv.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, srv.translate(ctx, err, "get")
	}

	return updated, nil
}

// Create validates the input, stores the record and announces public submissions.
func (srv *resourceService[E, C, U]) Create(ctx context.Context, viewer *entity.Principal, input *C) (*E, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrBadRequest)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record, err := srv.policy.Build(viewer, input)
	if err != nil {
		return nil, err
	}

	created, err := srv.repo.Create(ctx, record)
	if err != nil {
		return nil, srv.translate(ctx, err, "create")
	}

	srv.log(ctx).Info("Record created", slog.Any("id", srv.policy.IDOf(created)))

	if srv.policy.Submission != nil && !viewer.IsAdmin() {
		srv.announce(ctx, created)
	}

	return created, nil
}

// announce publishes a submission event. Failures are logged and never fail the request.
func (srv *resourceService[E, C, U]) announce(ctx context.Context, record *E) {
	submission := srv.policy.Submission
	srv.metrics.RecordSubmission(submission.Kind)

	event := &service.SubmissionEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Kind:        submission.Kind,
		RecordID:    srv.policy.IDOf(record).String(),
		Summary:     submission.Summary(record),
		SubmittedAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishSubmissionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish submission event",
			slog.String("kind", event.Kind),
			slog.String("recordID", event.RecordID),
			slog.Any("error", err),
		)
	}
}

// Update applies the supplied fields only.
func (srv *resourceService[E, C, U]) Update(ctx context.Context, id uuid.UUID, input *U) (*E, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrNoFieldsToUpdate)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	changes, err := srv.policy.Changes(input)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoFieldsToUpdate)
	}

	updated, err := srv.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, srv.translate(ctx, err, "update")
	}

	return updated, nil
}

// Delete removes or deactivates the record.
func (srv *resourceService[E, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		return srv.translate(ctx, err, "delete")
	}

	srv.log(ctx).Info("Record deleted", slog.Any("id", id))

	return nil
}

// translate maps repository errors onto the domain error taxonomy.
// Unexpected store errors are logged here and reported as internal errors.
func (srv *resourceService[E, C, U]) translate(ctx context.Context, err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return errors.Wrapf(domainerrors.ErrNotFound, "%s %s", op, srv.policy.Name)
	case errors.Is(err, repository.ErrRecordConflict):
		return errors.Wrapf(domainerrors.ErrConflict, "%s %s", op, srv.policy.Name)
	case errors.Is(err, repository.ErrConstraintViolation):
		return domainerrors.ErrValidationFailed.WithDetails("a referenced record does not exist or a value is out of range")
	default:
		srv.log(ctx).Error("Resource store failure", slog.String("op", op), slog.Any("error", err))

		if _, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err); ok {
			return errors.Wrapf(err, "%s %s", op, srv.policy.Name)
		}

		return errors.Wrapf(domainerrors.ErrInternalError, "%s %s", op, srv.policy.Name)
	}
}
