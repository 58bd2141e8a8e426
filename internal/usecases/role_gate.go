package usecases

import (
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
)

// Role gate: pure decisions over an already-resolved principal.
// The inactive check always precedes the role check; a disabled
// admin must not pass.

// RequireAdmin allows only active principals holding the admin role.
func RequireAdmin(p *entities.Principal) (*entities.Principal, error) {
	if !p.User.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}
	if !p.User.HasRole(entities.AdminRoleName) {
		return nil, domainerrors.ErrInsufficientPermissions
	}
	return p, nil
}

// RequireAnyRole allows active principals with at least one role.
func RequireAnyRole(p *entities.Principal) (*entities.Principal, error) {
	if !p.User.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}
	if len(p.User.Roles) == 0 {
		return nil, domainerrors.ErrInsufficientPermissions
	}
	return p, nil
}
