package user

import (
	"net/url"

	"go-opscentral/internal/domain"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusDisabled Status = "Disabled"
)

func ParseStatus(v string) (Status, bool) {
	switch s := Status(v); s {
	case StatusActive, StatusDisabled:
		return s, true
	default:
		return "", false
	}
}

type Profile struct {
	ID         string
	EmployeeID string
	Name       string
	Role       domain.Role
	Avatar     string
	Status     Status
}

// Account is a roster entry. PasswordHash is a bcrypt hash.
type Account struct {
	Username     string
	PasswordHash []byte
	Profile      Profile
}

// Seed is a plain-text roster entry, hashed when the roster is built.
type Seed struct {
	Username string
	Password string
	Profile  Profile
}

func AvatarURL(seed string) string {
	return "https://api.dicebear.com/8.x/initials/svg?seed=" + url.QueryEscape(seed)
}

// DefaultRoster is the fixed operator roster the dashboard ships with.
func DefaultRoster() []Seed {
	return []Seed{
		seed("Admin", "Admin", "a1b2c3d4-e5f6-7890-1234-567890abcdef", "ADMIN-001", "Administrator", domain.RoleAdmin, "Admin"),
		seed("User1", "User1", "b2c3d4e5-f6a7-8901-2345-67890abcdef1", "OPS-101", "Roxanne", domain.RoleUser, "Roxanne"),
		seed("User2", "User2", "c3d4e5f6-a7b8-9012-3456-7890abcdef12", "OPS-102", "Poonam", domain.RoleUser, "Poonam"),
		seed("User3", "User3", "d4e5f6a7-b8c9-0123-4567-890abcdef123", "OPS-103", "Divya", domain.RoleUser, "Divya"),
		seed("User4", "User4", "e5f6a7b8-c9d0-1234-5678-90abcdef1234", "OPS-104", "Param", domain.RoleUser, "Param"),
		seed("User5", "User5", "f6a7b8c9-d0e1-2345-6789-0abcdef12345", "OPS-105", "Anoop", domain.RoleUser, "Anoop"),
	}
}

func seed(username, password, id, employeeID, name string, role domain.Role, avatarSeed string) Seed {
	return Seed{
		Username: username,
		Password: password,
		Profile: Profile{
			ID:         id,
			EmployeeID: employeeID,
			Name:       name,
			Role:       role,
			Avatar:     AvatarURL(avatarSeed),
			Status:     StatusActive,
		},
	}
}
