package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// apiKeySecretBytes gives 256 bits of entropy per key secret
	apiKeySecretBytes = 32

	// lookupIDBytes sizes the public, indexed lookup id of an API key
	lookupIDBytes = 6
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// HashSecret hashes a password or API-key secret using bcrypt.
// bcrypt salts per call, so hashing the same secret twice yields
// different outputs.
func HashSecret(secret string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(bytes), nil
}

// VerifySecret compares a plaintext secret with a stored hash.
// bcrypt's comparison is constant-time over the computed digest.
func VerifySecret(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// GenerateAPIKeySecret generates the secret part of an API key:
// 32 random bytes, URL-safe base64 without padding.
func GenerateAPIKeySecret() (string, error) {
	bytes := make([]byte, apiKeySecretBytes)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate key secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GenerateLookupID generates the public lookup id of an API key.
// It is random but not secret; it only serves as an index.
func GenerateLookupID() (string, error) {
	bytes := make([]byte, lookupIDBytes)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate lookup id: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
