package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleAdmin may administer any city and switch the active city explicitly
	RoleAdmin Role = "admin"

	// RoleModerator moderates content, pinned to their home city
	RoleModerator Role = "moderator"

	// RoleMember is an ordinary citizen account
	RoleMember Role = "member"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleModerator, RoleMember}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
