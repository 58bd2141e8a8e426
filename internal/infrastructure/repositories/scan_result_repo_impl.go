package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/infrastructure/models"
)

// ScanResultRepository implements scan-record data operations on gorm.
type ScanResultRepository struct {
	db *gorm.DB
}

// NewScanResultRepository creates a new scan result repository
func NewScanResultRepository(db *gorm.DB) *ScanResultRepository {
	return &ScanResultRepository{db: db}
}

// Create stores a scan report.
func (r *ScanResultRepository) Create(ctx context.Context, scan *entities.ScanResult) error {
	m := &models.ScanResult{
		ID:               scan.ID,
		ImageName:        scan.ImageName,
		ImageTag:         scan.ImageTag,
		ScannerType:      scan.ScannerType,
		ScanTimestamp:    scan.ScanTimestamp,
		SeverityCritical: scan.SeverityCritical,
		SeverityHigh:     scan.SeverityHigh,
		SeverityMedium:   scan.SeverityMedium,
		SeverityLow:      scan.SeverityLow,
		RawResults:       string(scan.RawResults),
		UploadedBy:       scan.UploadedBy,
		CreatedAt:        scan.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a scan report by id.
func (r *ScanResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ScanResult, error) {
	var m models.ScanResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return scanToEntity(&m), nil
}

// List returns scan reports filtered by image name, newest first.
func (r *ScanResultRepository) List(ctx context.Context, imageName string, limit, offset int) ([]*entities.ScanResult, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ScanResult{})
	if imageName != "" {
		query = query.Where("image_name = ?", imageName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("scan_timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var scanModels []models.ScanResult
	if err := query.Find(&scanModels).Error; err != nil {
		return nil, 0, err
	}

	scans := make([]*entities.ScanResult, 0, len(scanModels))
	for i := range scanModels {
		scans = append(scans, scanToEntity(&scanModels[i]))
	}
	return scans, total, nil
}

func scanToEntity(m *models.ScanResult) *entities.ScanResult {
	var raw json.RawMessage
	if m.RawResults != "" {
		raw = json.RawMessage(m.RawResults)
	}
	return &entities.ScanResult{
		ID:               m.ID,
		ImageName:        m.ImageName,
		ImageTag:         m.ImageTag,
		ScannerType:      m.ScannerType,
		ScanTimestamp:    m.ScanTimestamp,
		SeverityCritical: m.SeverityCritical,
		SeverityHigh:     m.SeverityHigh,
		SeverityMedium:   m.SeverityMedium,
		SeverityLow:      m.SeverityLow,
		RawResults:       raw,
		UploadedBy:       m.UploadedBy,
		CreatedAt:        m.CreatedAt,
	}
}
