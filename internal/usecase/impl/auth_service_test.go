package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"academy/config"
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

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T, bootstrap *config.BootstrapAdminConfig) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Metrics:      metrics,
		Config:       &config.Config{BootstrapAdmin: bootstrap},
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      srv,
		txManager:    txManager,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
		metrics:      metrics,
	}
}

func activeAdmin(role entity.Role) *entity.AdminUser {
	return &entity.AdminUser{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         role,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	admin := activeAdmin(entity.RoleAdmin)

	fx.adminRepo.EXPECT().FindByUsername(ctx, "alice").Return(admin, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.MatchedBy(func(p *entity.Principal) bool { return p.ID == admin.ID && p.Role == entity.RoleAdmin })).
		Return("access", "refresh", nil)
	fx.adminRepo.EXPECT().UpdateLastLogin(ctx, admin.ID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(24 * time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, 24*time.Hour, out.ExpiresIn)
	assert.NotNil(t, out.User.LastLoginAt)
}

func TestAuthService_Login_FailuresShareOneError(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		setup  func(fx authServiceFixtures)
	}{
		{
			name:   "unknown user",
			reason: loginFailureUnknownUser,
			setup: func(fx authServiceFixtures) {
				fx.adminRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, repository.ErrAdminNotFound)
			},
		},
		{
			name:   "inactive user",
			reason: loginFailureInactive,
			setup: func(fx authServiceFixtures) {
				admin := activeAdmin(entity.RoleAdmin)
				admin.IsActive = false
				fx.adminRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(admin, nil)
			},
		},
		{
			name:   "wrong password",
			reason: loginFailureWrongPassword,
			setup: func(fx authServiceFixtures) {
				fx.adminRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(activeAdmin(entity.RoleAdmin), nil)
				fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, nil)
			tt.setup(fx)
			fx.metrics.EXPECT().RecordLoginFailure(tt.reason).Return()

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrong-pass"})

			assert.Nil(t, out)
			appErr := requireAppError(t, err, http.StatusUnauthorized, "INVALID_CREDENTIALS")
			assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), appErr.Message())
		})
	}
}

func TestAuthService_Login_LastLoginFailureIsIgnored(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	admin := activeAdmin(entity.RoleAdmin)

	fx.adminRepo.EXPECT().FindByUsername(ctx, "alice").Return(admin, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(mock.Anything).Return("access", "refresh", nil)
	fx.adminRepo.EXPECT().UpdateLastLogin(ctx, admin.ID, mock.Anything).Return(errors.New("connection reset"))
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Nil(t, out.User.LastLoginAt)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	fx := createTestAuthService(t, nil)

	fx.adminRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, errors.New("db down"))

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	admin := activeAdmin(entity.RoleSuperAdmin)
	claims := &service.Claims{ID: admin.ID, Type: service.TokenTypeRefresh}

	t.Run("issues access token", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.tokenService.EXPECT().ValidateToken("refresh-token", service.TokenTypeRefresh).Return(claims, nil)
		fx.adminRepo.EXPECT().FindByID(mock.Anything, admin.ID).Return(admin, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("*entity.Principal")).Return("new-access", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour)

		out, err := fx.service.Refresh(context.Background(), "refresh-token")

		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
		assert.Equal(t, time.Hour, out.ExpiresIn)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.tokenService.EXPECT().ValidateToken("access-token", service.TokenTypeRefresh).Return(nil, errors.New("invalid token"))

		_, err := fx.service.Refresh(context.Background(), "access-token")

		requireAppError(t, err, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID")
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		inactive := *admin
		inactive.IsActive = false
		fx.tokenService.EXPECT().ValidateToken("refresh-token", service.TokenTypeRefresh).Return(claims, nil)
		fx.adminRepo.EXPECT().FindByID(mock.Anything, admin.ID).Return(&inactive, nil)

		_, err := fx.service.Refresh(context.Background(), "refresh-token")

		requireAppError(t, err, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID")
	})
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t, nil)
	id := uuid.New()

	fx.adminRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrAdminNotFound)

	_, err := fx.service.GetProfile(context.Background(), id)

	requireAppError(t, err, http.StatusNotFound, "ADMIN_NOT_FOUND")
}

func TestAuthService_ChangePassword(t *testing.T) {
	admin := activeAdmin(entity.RoleAdmin)

	t.Run("rejects short password before any lookup", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			AdminID: admin.ID, CurrentPassword: "secret123", NewPassword: "short",
		})

		requireAppError(t, err, http.StatusBadRequest, "PASSWORD_TOO_SHORT")
	})

	t.Run("rejects password bcrypt would truncate", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			AdminID: admin.ID, CurrentPassword: "secret123", NewPassword: strings.Repeat("x", 73),
		})

		requireAppError(t, err, http.StatusBadRequest, "PASSWORD_TOO_LONG")
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.adminRepo.EXPECT().FindByID(mock.Anything, admin.ID).Return(admin, nil)
		fx.hasher.EXPECT().Check("not-it", "hashed").Return(false)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			AdminID: admin.ID, CurrentPassword: "not-it", NewPassword: "new-password",
		})

		requireAppError(t, err, http.StatusUnauthorized, "CURRENT_PASSWORD_INCORRECT")
	})

	t.Run("stores new hash", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.adminRepo.EXPECT().FindByID(mock.Anything, admin.ID).Return(admin, nil)
		fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
		fx.adminRepo.EXPECT().UpdatePassword(mock.Anything, admin.ID, "new-hash").Return(nil)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			AdminID: admin.ID, CurrentPassword: "secret123", NewPassword: "new-password",
		})

		require.NoError(t, err)
	})
}

func TestAuthService_CreateAdmin(t *testing.T) {
	superAdmin := activeAdmin(entity.RoleSuperAdmin).Principal()
	input := &usecase.CreateAdminInput{Username: "bob", Email: "bob@example.com", Password: "password1"}

	t.Run("admin cannot create admins", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		_, err := fx.service.CreateAdmin(context.Background(), activeAdmin(entity.RoleAdmin).Principal(), input)

		requireAppError(t, err, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("anonymous cannot create admins", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		_, err := fx.service.CreateAdmin(context.Background(), nil, input)

		requireAppError(t, err, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		bad := *input
		bad.Role = "owner"

		_, err := fx.service.CreateAdmin(context.Background(), superAdmin, &bad)

		requireAppError(t, err, http.StatusBadRequest, "INVALID_ROLE")
	})

	t.Run("rejects overlong password before hashing", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		bad := *input
		bad.Password = strings.Repeat("x", 73)

		_, err := fx.service.CreateAdmin(context.Background(), superAdmin, &bad)

		requireAppError(t, err, http.StatusBadRequest, "PASSWORD_TOO_LONG")
	})

	t.Run("rejects taken username", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		txRepo := mockRepo.NewMockAdminRepository(t)
		fx.hasher.EXPECT().Hash("password1").Return("hash", nil)
		expectAdminTx(t, fx.txManager, txRepo)
		txRepo.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "bob", "bob@example.com").Return(true, nil)

		_, err := fx.service.CreateAdmin(context.Background(), superAdmin, input)

		requireAppError(t, err, http.StatusConflict, "ADMIN_ALREADY_EXISTS")
	})

	t.Run("maps unique violation on insert to conflict", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		txRepo := mockRepo.NewMockAdminRepository(t)
		fx.hasher.EXPECT().Hash("password1").Return("hash", nil)
		expectAdminTx(t, fx.txManager, txRepo)
		txRepo.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "bob", "bob@example.com").Return(false, nil)
		txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.AdminUser")).Return(repository.ErrAdminConflict)

		_, err := fx.service.CreateAdmin(context.Background(), superAdmin, input)

		requireAppError(t, err, http.StatusConflict, "ADMIN_ALREADY_EXISTS")
	})

	t.Run("creates admin with default role", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		txRepo := mockRepo.NewMockAdminRepository(t)
		fx.hasher.EXPECT().Hash("password1").Return("hash", nil)
		expectAdminTx(t, fx.txManager, txRepo)
		txRepo.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "bob", "bob@example.com").Return(false, nil)
		txRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.AdminUser")).
			RunAndReturn(func(_ context.Context, admin *entity.AdminUser) error {
				admin.ID = uuid.New()

				return nil
			})

		admin, err := fx.service.CreateAdmin(context.Background(), superAdmin, input)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, admin.ID)
		assert.Equal(t, entity.RoleAdmin, admin.Role)
		assert.Equal(t, "hash", admin.PasswordHash)
		assert.True(t, admin.IsActive)
	})
}

func TestAuthService_ListAdmins_RequiresSuperAdmin(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.ListAdmins(context.Background(), activeAdmin(entity.RoleAdmin).Principal())

	requireAppError(t, err, http.StatusForbidden, "FORBIDDEN")
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	bootstrap := &config.BootstrapAdminConfig{Username: "root", Email: "root@example.com", Password: "change-me-now"}

	t.Run("disabled without username", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("keeps existing account", func(t *testing.T) {
		fx := createTestAuthService(t, bootstrap)
		fx.adminRepo.EXPECT().FindByUsername(mock.Anything, "root").Return(activeAdmin(entity.RoleSuperAdmin), nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("creates missing super admin", func(t *testing.T) {
		fx := createTestAuthService(t, bootstrap)
		txRepo := mockRepo.NewMockAdminRepository(t)
		fx.adminRepo.EXPECT().FindByUsername(mock.Anything, "root").Return(nil, repository.ErrAdminNotFound)
		fx.hasher.EXPECT().Hash("change-me-now").Return("hash", nil)
		expectAdminTx(t, fx.txManager, txRepo)
		txRepo.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "root", "root@example.com").Return(false, nil)
		txRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(a *entity.AdminUser) bool { return a.Role == entity.RoleSuperAdmin })).
			Return(nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})
}
