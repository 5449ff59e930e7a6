package domain

import "fmt"

// Role is the acting role supplied with every request. It is never stored on an Entry.
type Role string

const (
	RolePreparer Role = "PREPARER"
	RoleApprover Role = "APPROVER"
	// RoleAdmin may only perform privileged operations such as unposting.
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePreparer, RoleApprover, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Actor identifies who is performing an operation and in which role.
type Actor struct {
	UserID string
	Role   Role
}
