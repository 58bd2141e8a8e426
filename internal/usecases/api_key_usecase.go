package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/domain/repositories"
	"scanhub.backend/pkg/crypto"
	"scanhub.backend/pkg/logger"
)

// ApiKeyUsecase handles the API-key lifecycle. Keys have the form
//
//	shk_<lookup>_<secret>
//
// where <lookup> is a random, indexed, non-secret id and <secret>
// carries 256 bits of entropy and is stored only as a bcrypt hash.
// The split lets lookup be a single indexed read instead of a bcrypt
// scan over every active key, without weakening secrecy.
type ApiKeyUsecase struct {
	apiKeyRepo repositories.ApiKeyRepository
}

// NewApiKeyUsecase creates a new API key usecase
func NewApiKeyUsecase(apiKeyRepo repositories.ApiKeyRepository) *ApiKeyUsecase {
	return &ApiKeyUsecase{apiKeyRepo: apiKeyRepo}
}

// Create generates a key for the owner and persists its record.
// The plaintext key appears only in the returned response, never in
// storage or logs.
func (u *ApiKeyUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	lookupID, err := crypto.GenerateLookupID()
	if err != nil {
		return nil, err
	}
	secret, err := crypto.GenerateAPIKeySecret()
	if err != nil {
		return nil, err
	}

	keyHash, err := crypto.HashSecret(secret)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var expiresAt null.Time
	if input.ExpiresInDays > 0 {
		expiresAt = null.TimeFrom(now.AddDate(0, 0, input.ExpiresInDays))
	}

	key := &entities.ApiKey{
		ID:        uuid.New(),
		UserID:    ownerID,
		Name:      input.Name,
		LookupID:  lookupID,
		KeyHash:   keyHash,
		IsActive:  true,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.apiKeyRepo.Create(ctx, key); err != nil {
		return nil, err
	}

	return &entities.CreateApiKeyResponse{
		ID:        key.ID,
		Name:      key.Name,
		ApiKey:    fmt.Sprintf("%s_%s_%s", entities.APIKeyPrefix, lookupID, secret),
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
	}, nil
}

// FindValid resolves a plaintext key to its record. Every failure mode
// (bad format, unknown lookup id, hash mismatch, suspended, expired)
// collapses into ErrInvalidAPIKey.
func (u *ApiKeyUsecase) FindValid(ctx context.Context, plaintext string) (*entities.ApiKey, error) {
	lookupID, secret, ok := splitKey(plaintext)
	if !ok {
		return nil, domainerrors.ErrInvalidAPIKey
	}

	key, err := u.apiKeyRepo.FindByLookupID(ctx, lookupID)
	if err != nil {
		return nil, domainerrors.ErrInvalidAPIKey
	}

	if !crypto.VerifySecret(secret, key.KeyHash) {
		return nil, domainerrors.ErrInvalidAPIKey
	}
	if !key.IsActive || key.Expired(time.Now()) {
		return nil, domainerrors.ErrInvalidAPIKey
	}

	return key, nil
}

// Touch stamps last_used_at. Best-effort: a failed write is logged and
// swallowed so it can never fail an authentication.
func (u *ApiKeyUsecase) Touch(ctx context.Context, id uuid.UUID) {
	if err := u.apiKeyRepo.TouchLastUsed(ctx, id, time.Now()); err != nil {
		logger.Debug(ctx, "api key touch failed", zap.Error(err))
	}
}

// List lists the owner's keys.
func (u *ApiKeyUsecase) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.ApiKey, error) {
	return u.apiKeyRepo.FindByUserID(ctx, ownerID)
}

// Extend pushes an expiring key's expiry out by N days. Keys without
// an expiry cannot be extended.
func (u *ApiKeyUsecase) Extend(ctx context.Context, ownerID, id uuid.UUID, days int) (*entities.ApiKey, error) {
	key, err := u.ownedKey(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if !key.ExpiresAt.Valid {
		return nil, domainerrors.NewAppError(400, "cannot extend a key without an expiry", domainerrors.ErrInvalidOperation)
	}

	newExpiry := key.ExpiresAt.Time.AddDate(0, 0, days)
	if err := u.apiKeyRepo.UpdateExpiry(ctx, id, newExpiry); err != nil {
		return nil, err
	}
	key.ExpiresAt = null.TimeFrom(newExpiry)
	return key, nil
}

// SetActive sets the key's active flag to a specific state; idempotent.
func (u *ApiKeyUsecase) SetActive(ctx context.Context, ownerID, id uuid.UUID, active bool) error {
	if _, err := u.ownedKey(ctx, ownerID, id); err != nil {
		return err
	}
	return u.apiKeyRepo.UpdateActive(ctx, id, active)
}

// Toggle flips the active flag. Legacy behavior kept for the suspend
// endpoint; racy when two callers flip concurrently. Prefer SetActive.
func (u *ApiKeyUsecase) Toggle(ctx context.Context, ownerID, id uuid.UUID) (*entities.ApiKey, error) {
	key, err := u.ownedKey(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := u.apiKeyRepo.UpdateActive(ctx, id, !key.IsActive); err != nil {
		return nil, err
	}
	key.IsActive = !key.IsActive
	return key, nil
}

// Revoke deletes the key permanently.
func (u *ApiKeyUsecase) Revoke(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := u.ownedKey(ctx, ownerID, id); err != nil {
		return err
	}
	return u.apiKeyRepo.Delete(ctx, id)
}

func (u *ApiKeyUsecase) ownedKey(ctx context.Context, ownerID, id uuid.UUID) (*entities.ApiKey, error) {
	key, err := u.apiKeyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if key.UserID != ownerID {
		return nil, domainerrors.ErrForbidden
	}
	return key, nil
}

// splitKey parses "shk_<lookup>_<secret>". The base64url secret may
// itself contain underscores, so only the first two are separators;
// the fixed-width hex lookup id keeps the split unambiguous.
func splitKey(plaintext string) (lookupID, secret string, ok bool) {
	parts := strings.SplitN(plaintext, "_", 3)
	if len(parts) != 3 || parts[0] != entities.APIKeyPrefix || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
