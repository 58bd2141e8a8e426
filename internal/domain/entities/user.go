package entities

import (
	"time"

	"github.com/google/uuid"
)

// AdminRoleName is the role required by admin-only operations.
const AdminRoleName = "admin"

// Role is a named permission group. Static reference data; users are
// linked and unlinked through the many-to-many relation.
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// User is an identity record. Users are never hard-deleted; admins
// disable accounts via the active flag instead.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Roles        []Role    `json:"roles"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the names of the user's roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// CreateUserInput is the admin payload for creating a user.
type CreateUserInput struct {
	Username string   `json:"username" binding:"required,min=3,max=64"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Roles    []string `json:"roles"`
}

// LoginInput is the payload for password login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// UpdateStatusInput toggles a user's active flag.
type UpdateStatusInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UpdatePasswordInput sets a new password for a user.
type UpdatePasswordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateRolesInput replaces a user's role set.
type UpdateRolesInput struct {
	Roles []string `json:"roles" binding:"required"`
}
