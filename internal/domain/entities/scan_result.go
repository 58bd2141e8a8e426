package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanResult stores one container-image security scan report.
type ScanResult struct {
	ID               uuid.UUID       `json:"id"`
	ImageName        string          `json:"imageName"`
	ImageTag         string          `json:"imageTag"`
	ScannerType      string          `json:"scannerType"`
	ScanTimestamp    time.Time       `json:"scanTimestamp"`
	SeverityCritical int             `json:"severityCritical"`
	SeverityHigh     int             `json:"severityHigh"`
	SeverityMedium   int             `json:"severityMedium"`
	SeverityLow      int             `json:"severityLow"`
	RawResults       json.RawMessage `json:"rawResults,omitempty"`
	UploadedBy       uuid.UUID       `json:"uploadedBy"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// CreateScanResultInput is the payload for uploading a scan report.
type CreateScanResultInput struct {
	ImageName        string          `json:"imageName" binding:"required"`
	ImageTag         string          `json:"imageTag" binding:"required"`
	ScannerType      string          `json:"scannerType" binding:"required"`
	ScanTimestamp    *time.Time      `json:"scanTimestamp"`
	SeverityCritical int             `json:"severityCritical" binding:"min=0"`
	SeverityHigh     int             `json:"severityHigh" binding:"min=0"`
	SeverityMedium   int             `json:"severityMedium" binding:"min=0"`
	SeverityLow      int             `json:"severityLow" binding:"min=0"`
	RawResults       json.RawMessage `json:"rawResults"`
}
