package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
)

// ApiKeyRepository defines API-key data operations. Single-record
// read-modify-write consistency is delegated to the store's row-level
// transaction; the usecase holds no in-memory locks.
type ApiKeyRepository interface {
	Create(ctx context.Context, apiKey *entities.ApiKey) error
	FindByLookupID(ctx context.Context, lookupID string) (*entities.ApiKey, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ApiKey, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ApiKey, error)
	UpdateExpiry(ctx context.Context, id uuid.UUID, expiresAt time.Time) error
	UpdateActive(ctx context.Context, id uuid.UUID, active bool) error
	TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
