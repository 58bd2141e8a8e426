package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/domain/repositories"
	"scanhub.backend/pkg/crypto"
)

// UserUsecase handles administrative user management.
type UserUsecase struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// CreateUser creates a user account with an optional initial role set.
func (u *UserUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	if _, err := u.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashSecret(input.Password)
	if err != nil {
		return nil, err
	}

	roles, err := u.resolveRoles(ctx, input.Roles)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
		Roles:        roles,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers lists users with an optional search filter.
func (u *UserUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// SetStatus enables or disables an account.
func (u *UserUsecase) SetStatus(ctx context.Context, id uuid.UUID, active bool) error {
	return u.userRepo.UpdateStatus(ctx, id, active)
}

// SetPassword replaces a user's password.
func (u *UserUsecase) SetPassword(ctx context.Context, id uuid.UUID, password string) error {
	passwordHash, err := crypto.HashSecret(password)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, id, passwordHash)
}

// ReplaceRoles replaces a user's role set with the named roles,
// creating missing role rows on the fly.
func (u *UserUsecase) ReplaceRoles(ctx context.Context, id uuid.UUID, roleNames []string) (*entities.User, error) {
	roles, err := u.resolveRoles(ctx, roleNames)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.ReplaceRoles(ctx, id, roles); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

func (u *UserUsecase) resolveRoles(ctx context.Context, names []string) ([]entities.Role, error) {
	roles := make([]entities.Role, 0, len(names))
	for _, name := range names {
		role, err := u.roleRepo.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}
