// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password accepted for new or changed credentials.
const MinPasswordLength = 8

// --- Input DTOs ---

// LoginInput defines the credentials submitted to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to rotate an admin's password.
type ChangePasswordInput struct {
	AdminID         uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// CreateAdminInput defines the data required to provision a new admin account.
// An empty Role means entity.RoleAdmin.
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// --- Output DTOs ---

// LoginOutput returns the account and the issued token pair.
type LoginOutput struct {
	User         *entity.AdminUser
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// RefreshOutput returns a fresh access token.
type RefreshOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// AuthUsecase defines authentication and admin-account operations.
type AuthUsecase interface {
	// Login verifies credentials. Unknown user, inactive user and wrong password share one error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a refresh token for a new access token carrying current account data.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// GetProfile returns the caller's account.
	GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.AdminUser, error)

	// ChangePassword re-hashes the password after verifying the current one.
	// Previously issued tokens stay valid until they expire.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// CreateAdmin provisions an account. Only super admins may call it.
	CreateAdmin(ctx context.Context, requestor *entity.Principal, input *CreateAdminInput) (*entity.AdminUser, error)

	// ListAdmins returns every account. Only super admins may call it.
	ListAdmins(ctx context.Context, requestor *entity.Principal) ([]*entity.AdminUser, error)

	// EnsureBootstrapAdmin creates the configured super admin when it does not exist yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}
