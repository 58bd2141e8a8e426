package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// APIKeyPrefix marks every key issued by this service.
const APIKeyPrefix = "shk"

// ApiKey is a long-lived credential. Only the bcrypt hash of the secret
// part is stored; the plaintext is returned to the owner exactly once,
// at creation. LookupID is the random, non-secret, indexed half of the
// key that makes lookup O(1) despite the salted hash.
type ApiKey struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Name       string    `json:"name"`
	LookupID   string    `json:"-"`
	KeyHash    string    `json:"-"`
	IsActive   bool      `json:"isActive"`
	ExpiresAt  null.Time `json:"expiresAt,omitempty"`
	LastUsedAt null.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	User *User `json:"-"`
}

// Expired reports whether the key's expiry, if any, has passed.
func (k *ApiKey) Expired(now time.Time) bool {
	return k.ExpiresAt.Valid && !k.ExpiresAt.Time.After(now)
}

// CreateApiKeyInput is the payload for creating an API key.
// ExpiresInDays of zero or absent means the key never expires.
type CreateApiKeyInput struct {
	Name          string `json:"name" binding:"required,max=100"`
	ExpiresInDays int    `json:"expires_in_days" binding:"omitempty,min=1"`
}

// CreateApiKeyResponse returns the plaintext key exactly once.
type CreateApiKeyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ApiKey    string    `json:"api_key"`
	ExpiresAt null.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExtendApiKeyInput extends an expiring key by N days.
type ExtendApiKeyInput struct {
	Days int `json:"days" binding:"required,min=1"`
}

// SetApiKeyActiveInput sets a key's active flag to a specific state.
type SetApiKeyActiveInput struct {
	Active *bool `json:"active" binding:"required"`
}
