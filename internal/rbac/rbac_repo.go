package rbac

import "go-opscentral/internal/domain"

type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type repository struct {
	rows []RolePermissionRow
}

// NewRepository serves the built-in policy. Roles are a closed set, so the
// policy ships with the binary instead of living in a table.
func NewRepository() Repository {
	return &repository{rows: DefaultPolicy()}
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	out := make([]RolePermissionRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func DefaultPolicy() []RolePermissionRow {
	user := string(domain.RoleUser)
	return []RolePermissionRow{
		{Role: string(domain.RoleAdmin), Resource: "*", Action: "*"},
		{Role: user, Resource: "job", Action: "read"},
		{Role: user, Resource: "job", Action: "create"},
		{Role: user, Resource: "job", Action: "delete"},
		{Role: user, Resource: "job", Action: "allocate"},
		{Role: user, Resource: "settings", Action: "read"},
		{Role: user, Resource: "resource", Action: "read"},
		{Role: user, Resource: "capacity", Action: "read"},
	}
}
