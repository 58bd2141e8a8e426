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
	"scanhub.backend/pkg/jwt"
)

// AuthUsecase handles password login and token issuance.
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	tokenService *jwt.Service
	accessExpiry time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, tokenService *jwt.Service, accessExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		tokenService: tokenService,
		accessExpiry: accessExpiry,
	}
}

// Login authenticates username+password and issues a bearer token.
// Unknown user and wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifySecret(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.tokenService.Issue(user.Username, u.accessExpiry)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
