package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	mockRepo "academy/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectAdminTx makes the transaction manager run fn against adminRepo.
func expectAdminTx(t *testing.T, txManager *mockRepo.MockTransactionManager, adminRepo *mockRepo.MockAdminRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAdminRepository().Return(adminRepo)

			return fn(factory)
		})
}

// requireAppError asserts err carries an AppError with the given HTTP status and code.
func requireAppError(t *testing.T, err error, httpCode int, errorCode string) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError, got %v", err)
	require.Equal(t, httpCode, appErr.HTTPCode())
	require.Equal(t, errorCode, appErr.ErrorCode())

	return appErr
}
