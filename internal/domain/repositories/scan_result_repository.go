package repositories

import (
	"context"

	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
)

// ScanResultRepository defines scan-record data operations.
type ScanResultRepository interface {
	Create(ctx context.Context, scan *entities.ScanResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ScanResult, error)
	List(ctx context.Context, imageName string, limit, offset int) ([]*entities.ScanResult, int64, error)
}
