// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"academy/config"
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

// Login failure reasons reported to metrics.
const (
	loginFailureUnknownUser   = "unknown_user"
	loginFailureInactive      = "inactive"
	loginFailureWrongPassword = "wrong_password"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	bootstrap    *config.BootstrapAdminConfig
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var bootstrap *config.BootstrapAdminConfig
	if params.Config != nil {
		bootstrap = params.Config.BootstrapAdmin
	}

	return &authService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		bootstrap:    bootstrap,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("username", input.Username))

	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, srv.rejectLogin(ctx, input.Username, loginFailureUnknownUser)
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	if !admin.IsActive {
		return nil, srv.rejectLogin(ctx, input.Username, loginFailureInactive)
	}

	// bcrypt is CPU-bound; no store call is held open while it runs.
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, srv.rejectLogin(ctx, input.Username, loginFailureWrongPassword)
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(admin.Principal())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	loginAt := srv.now().UTC()
	if err := srv.adminRepo.UpdateLastLogin(ctx, admin.ID, loginAt); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.Any("adminID", admin.ID), slog.Any("error", err))
	} else {
		admin.LastLoginAt = &loginAt
	}

	srv.log(ctx).Info("Admin logged in", slog.Any("adminID", admin.ID))

	return &usecase.LoginOutput{
		User:         admin,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    srv.tokenService.GetAccessTokenDuration(),
	}, nil
}

// rejectLogin reports every failure with the same error so callers cannot
// tell an unknown username from a wrong password.
func (srv *authService) rejectLogin(ctx context.Context, username, reason string) error {
	srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", reason))
	srv.metrics.RecordLoginFailure(reason)

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
}

// Refresh issues a new access token for a still-active account.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	admin, err := srv.adminRepo.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !admin.IsActive {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account is inactive")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(admin.Principal())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	return &usecase.RefreshOutput{
		AccessToken: accessToken,
		ExpiresIn:   srv.tokenService.GetAccessTokenDuration(),
	}, nil
}

// GetProfile returns the caller's account.
func (srv *authService) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.AdminUser, error) {
	admin, err := srv.findAdmin(ctx, srv.adminRepo, adminID)
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if err := checkPasswordLength(input.NewPassword); err != nil {
		return err
	}

	admin, err := srv.findAdmin(ctx, srv.adminRepo, input.AdminID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, admin.PasswordHash) {
		return errors.WithStack(domainerrors.ErrCurrentPasswordMismatch)
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.adminRepo.UpdatePassword(ctx, admin.ID, hash); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return errors.WithStack(domainerrors.ErrAdminNotFound)
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Admin password changed", slog.Any("adminID", admin.ID))

	return nil
}

// CreateAdmin provisions a new account on behalf of a super admin.
func (srv *authService) CreateAdmin(
	ctx context.Context,
	requestor *entity.Principal,
	input *usecase.CreateAdminInput,
) (*entity.AdminUser, error) {
	if !requestor.HasRole(entity.RoleSuperAdmin) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only super admins can create admins")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidRole)
	}

	admin, err := srv.createAdmin(ctx, input.Username, input.Email, input.Password, role)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin created",
		slog.Any("adminID", admin.ID),
		slog.String("role", string(role)),
		slog.Any("createdBy", requestor.ID),
	)

	return admin, nil
}

func (srv *authService) createAdmin(ctx context.Context, username, email, password string, role entity.Role) (*entity.AdminUser, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and email are required")
	}
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}

	// Hash before opening the transaction.
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.NewAdminRepository()

		exists, err := adminRepo.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return errors.Wrap(err, "failed to check existing admins")
		}
		if exists {
			return errors.WithStack(domainerrors.ErrAdminAlreadyExists)
		}

		if err := adminRepo.Create(ctx, admin); err != nil {
			if errors.Is(err, repository.ErrAdminConflict) {
				return errors.WithStack(domainerrors.ErrAdminAlreadyExists)
			}

			return errors.Wrap(err, "failed to create admin")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create admin transaction")
	}

	return admin, nil
}

// checkPasswordLength bounds new passwords before they reach the hasher.
func checkPasswordLength(password string) error {
	switch {
	case len(password) < usecase.MinPasswordLength:
		return errors.WithStack(domainerrors.ErrPasswordTooShort)
	case len(password) > service.MaxPasswordBytes:
		return errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	return nil
}

// ListAdmins returns every account.
func (srv *authService) ListAdmins(ctx context.Context, requestor *entity.Principal) ([]*entity.AdminUser, error) {
	if !requestor.HasRole(entity.RoleSuperAdmin) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only super admins can list admins")
	}

	admins, err := srv.adminRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return admins, nil
}

// EnsureBootstrapAdmin creates the configured super admin once.
func (srv *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || srv.bootstrap.Username == "" {
		return nil
	}

	_, err := srv.adminRepo.FindByUsername(ctx, srv.bootstrap.Username)
	if err == nil {
		srv.log(ctx).Debug("Bootstrap admin already present", slog.String("username", srv.bootstrap.Username))

		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	admin, err := srv.createAdmin(ctx, srv.bootstrap.Username, srv.bootstrap.Email, srv.bootstrap.Password, entity.RoleSuperAdmin)
	if err != nil {
		// Another instance won the race.
		if errors.Is(err, domainerrors.ErrAdminAlreadyExists) {
			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap super admin created", slog.Any("adminID", admin.ID), slog.String("username", admin.Username))

	return nil
}

func (srv *authService) findAdmin(ctx context.Context, adminRepo repository.AdminRepository, id uuid.UUID) (*entity.AdminUser, error) {
	admin, err := adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAdminNotFound)
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return admin, nil
}
