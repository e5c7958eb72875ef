package domain

import "strings"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole returns false for anything outside the closed role set.
func ParseRole(v string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(v))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// Actor is the authenticated caller of a mutating operation.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
