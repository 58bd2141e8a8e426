package models

import (
	"time"

	"github.com/google/uuid"
)

type ScanResult struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ImageName        string    `gorm:"type:varchar(255);not null;index"`
	ImageTag         string    `gorm:"type:varchar(128);not null"`
	ScannerType      string    `gorm:"type:varchar(64);not null"`
	ScanTimestamp    time.Time `gorm:"not null"`
	SeverityCritical int       `gorm:"default:0;not null"`
	SeverityHigh     int       `gorm:"default:0;not null"`
	SeverityMedium   int       `gorm:"default:0;not null"`
	SeverityLow      int       `gorm:"default:0;not null"`
	RawResults       string    `gorm:"type:jsonb"`
	UploadedBy       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	User             User `gorm:"foreignKey:UploadedBy"`
}
