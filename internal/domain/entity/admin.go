// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account able to log in and manage content.
type AdminUser struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialized.
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Principal returns the identity carried inside tokens for this account.
func (a *AdminUser) Principal() *Principal {
	return &Principal{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// Principal is the authenticated identity attached to a request.
// A nil *Principal stands for an anonymous caller.
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}

// IsAdmin reports whether the principal may see hidden records and manage content.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.Satisfies(RoleAdmin)
}

// HasRole reports whether the principal satisfies the required role.
func (p *Principal) HasRole(required Role) bool {
	return p != nil && p.Role.Satisfies(required)
}
