package models

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	LookupID   string    `gorm:"type:varchar(16);uniqueIndex;not null"` // public half of the key
	KeyHash    string    `gorm:"type:varchar(255);not null"`            // bcrypt of the secret half
	IsActive   bool      `gorm:"default:true;not null"`
	ExpiresAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	User       User `gorm:"foreignKey:UserID"`
}
