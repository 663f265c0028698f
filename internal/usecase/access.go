package usecase

import (
	"rental_backend/internal/domain/entities"
	"rental_backend/pkg"
)

var (
	ErrUnauthenticated = pkg.Kind(pkg.ErrUnauthorized, "authentication required")
	ErrRoleNotAllowed  = pkg.Kind(pkg.ErrForbidden, "role not allowed for this operation")
)

// authorize checks the principal against a role gate. Admins pass every
// gate; calling it with no roles admits admins only.
func authorize(p entities.Principal, roles ...entities.Role) error {
	if p.Role == "" {
		return ErrUnauthenticated
	}
	if !p.HasAnyRole(roles...) {
		return ErrRoleNotAllowed
	}
	return nil
}
