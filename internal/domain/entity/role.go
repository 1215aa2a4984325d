// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege level of an admin account.
type Role string

const (
	// RoleAdmin may manage every content resource.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin may additionally manage admin accounts.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// rank orders roles by privilege; unknown roles rank below every known one.
func (r Role) rank() int {
	switch r {
	case RoleSuperAdmin:
		return 2
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether r grants at least the privileges of required.
// super_admin satisfies admin, admin does not satisfy super_admin.
func (r Role) Satisfies(required Role) bool {
	return r.IsValid() && r.rank() >= required.rank()
}
