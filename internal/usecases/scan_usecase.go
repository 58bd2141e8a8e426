package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
	"scanhub.backend/internal/domain/repositories"
	"scanhub.backend/pkg/utils"
)

// ScanUsecase handles scan report ingestion and retrieval.
type ScanUsecase struct {
	scanRepo repositories.ScanResultRepository
}

// NewScanUsecase creates a new scan usecase
func NewScanUsecase(scanRepo repositories.ScanResultRepository) *ScanUsecase {
	return &ScanUsecase{scanRepo: scanRepo}
}

// Create stores an uploaded scan report attributed to the uploader.
// A missing scan timestamp defaults to the upload time.
func (u *ScanUsecase) Create(ctx context.Context, uploadedBy uuid.UUID, input *entities.CreateScanResultInput) (*entities.ScanResult, error) {
	now := time.Now()
	scanTimestamp := now
	if input.ScanTimestamp != nil {
		scanTimestamp = *input.ScanTimestamp
	}

	// Scan rows are append-heavy; time-ordered ids keep the index hot.
	scan := &entities.ScanResult{
		ID:               utils.GenerateUUIDv7(),
		ImageName:        input.ImageName,
		ImageTag:         input.ImageTag,
		ScannerType:      input.ScannerType,
		ScanTimestamp:    scanTimestamp,
		SeverityCritical: input.SeverityCritical,
		SeverityHigh:     input.SeverityHigh,
		SeverityMedium:   input.SeverityMedium,
		SeverityLow:      input.SeverityLow,
		RawResults:       input.RawResults,
		UploadedBy:       uploadedBy,
		CreatedAt:        now,
	}

	if err := u.scanRepo.Create(ctx, scan); err != nil {
		return nil, err
	}
	return scan, nil
}

// GetByID fetches a single scan report.
func (u *ScanUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.ScanResult, error) {
	return u.scanRepo.GetByID(ctx, id)
}

// List returns scan reports, newest first, optionally filtered by
// image name.
func (u *ScanUsecase) List(ctx context.Context, imageName string, limit, offset int) ([]*entities.ScanResult, int64, error) {
	return u.scanRepo.List(ctx, imageName, limit, offset)
}
