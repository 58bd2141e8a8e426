package usecases

import (
	"context"
	"errors"

	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/domain/repositories"
	"scanhub.backend/pkg/jwt"
)

// PrincipalResolver turns a request's presented credentials into an
// authenticated Principal. Resolution is an ordered match over the
// credential union, not a fallback chain:
//
//  1. An API key, if presented, is checked first and exclusively;
//     its failure is final even when a bearer token is also present.
//  2. A bearer token is checked only when no API key was presented.
//  3. Neither presented fails with ErrMissingCredentials.
//
// The resolver holds no mutable state, so concurrent resolutions are
// independent; racing touch updates are serialized by the store.
type PrincipalResolver struct {
	userRepo     repositories.UserRepository
	apiKeyCase   *ApiKeyUsecase
	tokenService *jwt.Service
}

// NewPrincipalResolver creates a new principal resolver
func NewPrincipalResolver(userRepo repositories.UserRepository, apiKeyCase *ApiKeyUsecase, tokenService *jwt.Service) *PrincipalResolver {
	return &PrincipalResolver{
		userRepo:     userRepo,
		apiKeyCase:   apiKeyCase,
		tokenService: tokenService,
	}
}

// Resolve authenticates the presented credentials.
func (r *PrincipalResolver) Resolve(ctx context.Context, presented entities.PresentedCredentials) (*entities.Principal, error) {
	if presented.APIKey != "" {
		return r.resolveAPIKey(ctx, presented.APIKey)
	}
	if presented.BearerToken != "" {
		return r.resolveBearer(ctx, presented.BearerToken)
	}
	return nil, domainerrors.ErrMissingCredentials
}

func (r *PrincipalResolver) resolveAPIKey(ctx context.Context, plaintext string) (*entities.Principal, error) {
	key, err := r.apiKeyCase.FindValid(ctx, plaintext)
	if err != nil {
		return nil, err
	}

	user := key.User
	if user == nil {
		user, err = r.userRepo.GetByID(ctx, key.UserID)
		if err != nil {
			return nil, domainerrors.ErrInvalidAPIKey
		}
	}

	// Fire-and-forget; never fails the request.
	r.apiKeyCase.Touch(ctx, key.ID)

	return &entities.Principal{User: user, Scheme: entities.SchemeAPIKey}, nil
}

func (r *PrincipalResolver) resolveBearer(ctx context.Context, token string) (*entities.Principal, error) {
	claims, err := r.tokenService.Verify(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// A verified token whose user has since vanished looks identical
	// to any other bad credential from the outside.
	user, err := r.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	return &entities.Principal{User: user, Scheme: entities.SchemeBearer}, nil
}
