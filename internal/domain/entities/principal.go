package entities

import "strings"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSales      Role = "sales"
	RoleWarehouse  Role = "warehouse"
	RoleFinance    Role = "finance"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole accepts any casing and reports whether the role is known.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleCustomer, RoleSales, RoleWarehouse, RoleFinance, RoleAdmin, RoleSuperAdmin:
		return r, true
	}
	return "", false
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}

// HasAnyRole reports whether the principal holds one of roles. Admins pass
// every gate.
func (p Principal) HasAnyRole(roles ...Role) bool {
	if p.IsAdmin() {
		return true
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// Actor is the identifier written into audit fields.
func (p Principal) Actor() string {
	if p.Email != "" {
		return p.Email
	}
	return p.ID
}
