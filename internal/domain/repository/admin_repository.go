// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an admin account is not found.
var ErrAdminNotFound = errors.New("admin user not found")

// ErrAdminConflict is returned when a username or email is already taken.
var ErrAdminConflict = errors.New("admin username or email already exists")

// AdminRepository defines persistence operations for back-office accounts.
type AdminRepository interface {
	// FindByID retrieves a single admin by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)

	// FindByUsername retrieves a single admin by username.
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)

	// ExistsByUsernameOrEmail reports whether any account already uses the username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// List returns every admin ordered by creation time.
	List(ctx context.Context) ([]*entity.AdminUser, error)

	// Create persists a new admin. ID and timestamps are filled in on success.
	Create(ctx context.Context, admin *entity.AdminUser) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
