package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/infrastructure/models"
)

// ApiKeyRepository implements API-key data operations on gorm. Each
// method is a single-record statement, so the store's row-level
// transaction is the only synchronization needed under concurrent
// authentication, extend, suspend and revoke calls.
type ApiKeyRepository struct {
	db *gorm.DB
}

// NewApiKeyRepository creates a new API key repository
func NewApiKeyRepository(db *gorm.DB) *ApiKeyRepository {
	return &ApiKeyRepository{db: db}
}

// Create creates a new API key record.
func (r *ApiKeyRepository) Create(ctx context.Context, apiKey *entities.ApiKey) error {
	m := &models.ApiKey{
		ID:         apiKey.ID,
		UserID:     apiKey.UserID,
		Name:       apiKey.Name,
		LookupID:   apiKey.LookupID,
		KeyHash:    apiKey.KeyHash,
		IsActive:   apiKey.IsActive,
		ExpiresAt:  apiKey.ExpiresAt.Ptr(),
		LastUsedAt: apiKey.LastUsedAt.Ptr(),
		CreatedAt:  apiKey.CreatedAt,
		UpdatedAt:  apiKey.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// FindByLookupID gets a key by its public lookup id, owner preloaded.
func (r *ApiKeyRepository) FindByLookupID(ctx context.Context, lookupID string) (*entities.ApiKey, error) {
	var m models.ApiKey
	if err := r.db.WithContext(ctx).Preload("User.Roles").Where("lookup_id = ?", lookupID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return apiKeyToEntity(&m), nil
}

// FindByID gets a key by primary id.
func (r *ApiKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ApiKey, error) {
	var m models.ApiKey
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return apiKeyToEntity(&m), nil
}

// FindByUserID lists a user's keys, newest first.
func (r *ApiKeyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ApiKey, error) {
	var keyModels []models.ApiKey
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&keyModels).Error; err != nil {
		return nil, err
	}
	keys := make([]*entities.ApiKey, 0, len(keyModels))
	for i := range keyModels {
		keys = append(keys, apiKeyToEntity(&keyModels[i]))
	}
	return keys, nil
}

// UpdateExpiry sets a new expiry instant.
func (r *ApiKeyRepository) UpdateExpiry(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"expires_at": expiresAt,
		"updated_at": time.Now(),
	})
}

// UpdateActive sets the active flag.
func (r *ApiKeyRepository) UpdateActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})
}

// TouchLastUsed stamps last_used_at. Runs on the hot authentication
// path; callers treat its error as best-effort.
func (r *ApiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&models.ApiKey{}).Where("id = ?", id).
		UpdateColumn("last_used_at", usedAt).Error
}

// Delete removes the key permanently. Future lookups fail; tokens
// already issued to the owner are unaffected.
func (r *ApiKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ApiKey{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ApiKeyRepository) updateColumns(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.ApiKey{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func apiKeyToEntity(m *models.ApiKey) *entities.ApiKey {
	e := &entities.ApiKey{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		LookupID:   m.LookupID,
		KeyHash:    m.KeyHash,
		IsActive:   m.IsActive,
		ExpiresAt:  null.TimeFromPtr(m.ExpiresAt),
		LastUsedAt: null.TimeFromPtr(m.LastUsedAt),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.User.ID != uuid.Nil {
		e.User = userToEntity(&m.User)
	}
	return e
}
