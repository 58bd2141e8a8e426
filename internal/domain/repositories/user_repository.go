package repositories

import (
	"context"

	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
)

// UserRepository defines user data operations. Reads return users with
// their role set preloaded.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	List(ctx context.Context, search string) ([]*entities.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ReplaceRoles(ctx context.Context, id uuid.UUID, roles []entities.Role) error
}

// RoleRepository defines role reference-data operations.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Role, error)
	GetOrCreate(ctx context.Context, name string) (*entities.Role, error)
	List(ctx context.Context) ([]*entities.Role, error)
}
