package usecases_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/usecases"
	"scanhub.backend/pkg/crypto"
)

func TestApiKeyUsecase_Create(t *testing.T) {
	mockRepo := new(MockApiKeyRepository)
	uc := usecases.NewApiKeyUsecase(mockRepo)
	ctx := context.Background()
	ownerID := uuid.New()

	var stored *entities.ApiKey
	mockRepo.On("Create", ctx, mock.AnythingOfType("*entities.ApiKey")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entities.ApiKey) }).
		Return(nil)

	resp, err := uc.Create(ctx, ownerID, &entities.CreateApiKeyInput{Name: "ci-pipeline", ExpiresInDays: 30})
	require.NoError(t, err)
	require.NotNil(t, stored)

	parts := strings.SplitN(resp.ApiKey, "_", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, entities.APIKeyPrefix, parts[0])
	assert.Equal(t, stored.LookupID, parts[1])

	// Only the hash is persisted, and it matches the returned secret.
	assert.NotContains(t, stored.KeyHash, parts[2])
	assert.True(t, crypto.VerifySecret(parts[2], stored.KeyHash))

	assert.True(t, stored.IsActive)
	assert.True(t, stored.ExpiresAt.Valid)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), stored.ExpiresAt.Time, time.Minute)

	mockRepo.AssertExpectations(t)
}

func TestApiKeyUsecase_CreateWithoutExpiry(t *testing.T) {
	mockRepo := new(MockApiKeyRepository)
	uc := usecases.NewApiKeyUsecase(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*entities.ApiKey")).Return(nil)

	resp, err := uc.Create(ctx, uuid.New(), &entities.CreateApiKeyInput{Name: "forever"})
	require.NoError(t, err)
	assert.False(t, resp.ExpiresAt.Valid)
}

func TestApiKeyUsecase_FindValid_RoundTrip(t *testing.T) {
	mockRepo := new(MockApiKeyRepository)
	uc := usecases.NewApiKeyUsecase(mockRepo)
	ctx := context.Background()

	var stored *entities.ApiKey
	mockRepo.On("Create", ctx, mock.AnythingOfType("*entities.ApiKey")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entities.ApiKey) }).
		Return(nil)

	resp, err := uc.Create(ctx, uuid.New(), &entities.CreateApiKeyInput{Name: "ci"})
	require.NoError(t, err)

	mockRepo.On("FindByLookupID", ctx, stored.LookupID).Return(stored, nil)

	key, err := uc.FindValid(ctx, resp.ApiKey)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, key.ID)
}

func TestApiKeyUsecase_FindValid_SecretWithUnderscores(t *testing.T) {
	ctx := context.Background()

	// base64url secrets can legitimately contain underscores; only the
	// first two separate the prefix and the lookup id.
	secret := "WGZoZrzh3ORe_zYqr57GnQisL3_UEckdJ9QFv0pilHQ"
	hash, err := crypto.HashSecret(secret)
	require.NoError(t, err)

	stored := &entities.ApiKey{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		LookupID: "8db4d3f352fa",
		KeyHash:  hash,
		IsActive: true,
	}
	mockRepo := new(MockApiKeyRepository)
	mockRepo.On("FindByLookupID", ctx, stored.LookupID).Return(stored, nil)
	uc := usecases.NewApiKeyUsecase(mockRepo)

	key, err := uc.FindValid(ctx, "shk_8db4d3f352fa_"+secret)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, key.ID)
}

func TestApiKeyUsecase_FindValid_Failures(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	hash, err := crypto.HashSecret("right-secret")
	require.NoError(t, err)

	base := entities.ApiKey{
		ID:       uuid.New(),
		UserID:   ownerID,
		LookupID: "aabbccddeeff",
		KeyHash:  hash,
		IsActive: true,
	}

	t.Run("malformed", func(t *testing.T) {
		uc := usecases.NewApiKeyUsecase(new(MockApiKeyRepository))
		for _, plaintext := range []string{"", "shk_onlyonepart", "nope_aabb_secret", "shk__secret", "shk_aabb_"} {
			_, err := uc.FindValid(ctx, plaintext)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAPIKey, "plaintext=%q", plaintext)
		}
	})

	t.Run("unknown lookup id", func(t *testing.T) {
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByLookupID", ctx, "aabbccddeeff").Return(nil, domainerrors.ErrNotFound)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		_, err := uc.FindValid(ctx, "shk_aabbccddeeff_right-secret")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAPIKey)
	})

	t.Run("wrong secret", func(t *testing.T) {
		key := base
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByLookupID", ctx, key.LookupID).Return(&key, nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		_, err := uc.FindValid(ctx, "shk_aabbccddeeff_wrong-secret")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAPIKey)
	})

	t.Run("suspended", func(t *testing.T) {
		key := base
		key.IsActive = false
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByLookupID", ctx, key.LookupID).Return(&key, nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		_, err := uc.FindValid(ctx, "shk_aabbccddeeff_right-secret")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAPIKey)
	})

	t.Run("expired", func(t *testing.T) {
		key := base
		key.ExpiresAt = null.TimeFrom(time.Now().Add(-time.Hour))
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByLookupID", ctx, key.LookupID).Return(&key, nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		_, err := uc.FindValid(ctx, "shk_aabbccddeeff_right-secret")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAPIKey)
	})
}

func TestApiKeyUsecase_Extend(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	keyID := uuid.New()

	t.Run("pushes expiry out", func(t *testing.T) {
		expiry := time.Now().AddDate(0, 0, 10)
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByID", ctx, keyID).Return(&entities.ApiKey{
			ID: keyID, UserID: ownerID, ExpiresAt: null.TimeFrom(expiry),
		}, nil)
		mockRepo.On("UpdateExpiry", ctx, keyID, mock.AnythingOfType("time.Time")).Return(nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		key, err := uc.Extend(ctx, ownerID, keyID, 20)
		require.NoError(t, err)
		assert.WithinDuration(t, expiry.AddDate(0, 0, 20), key.ExpiresAt.Time, time.Second)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-expiring key cannot be extended", func(t *testing.T) {
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByID", ctx, keyID).Return(&entities.ApiKey{ID: keyID, UserID: ownerID}, nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		_, err := uc.Extend(ctx, ownerID, keyID, 20)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOperation)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByID", ctx, keyID).Return(&entities.ApiKey{ID: keyID, UserID: uuid.New()}, nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		_, err := uc.Extend(ctx, ownerID, keyID, 20)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestApiKeyUsecase_SetActiveAndToggle(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	keyID := uuid.New()

	t.Run("set active is explicit", func(t *testing.T) {
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByID", ctx, keyID).Return(&entities.ApiKey{ID: keyID, UserID: ownerID, IsActive: false}, nil)
		mockRepo.On("UpdateActive", ctx, keyID, true).Return(nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		require.NoError(t, uc.SetActive(ctx, ownerID, keyID, true))
		mockRepo.AssertExpectations(t)
	})

	t.Run("toggle flips", func(t *testing.T) {
		mockRepo := new(MockApiKeyRepository)
		mockRepo.On("FindByID", ctx, keyID).Return(&entities.ApiKey{ID: keyID, UserID: ownerID, IsActive: true}, nil)
		mockRepo.On("UpdateActive", ctx, keyID, false).Return(nil)
		uc := usecases.NewApiKeyUsecase(mockRepo)

		key, err := uc.Toggle(ctx, ownerID, keyID)
		require.NoError(t, err)
		assert.False(t, key.IsActive)
		mockRepo.AssertExpectations(t)
	})
}

func TestApiKeyUsecase_Revoke(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	keyID := uuid.New()

	mockRepo := new(MockApiKeyRepository)
	mockRepo.On("FindByID", ctx, keyID).Return(&entities.ApiKey{ID: keyID, UserID: ownerID}, nil)
	mockRepo.On("Delete", ctx, keyID).Return(nil)
	uc := usecases.NewApiKeyUsecase(mockRepo)

	require.NoError(t, uc.Revoke(ctx, ownerID, keyID))
	mockRepo.AssertExpectations(t)
}

func TestApiKeyUsecase_TouchSwallowsErrors(t *testing.T) {
	ctx := context.Background()
	keyID := uuid.New()

	mockRepo := new(MockApiKeyRepository)
	mockRepo.On("TouchLastUsed", ctx, keyID, mock.AnythingOfType("time.Time")).Return(assert.AnError)
	uc := usecases.NewApiKeyUsecase(mockRepo)

	// Must not panic or propagate.
	uc.Touch(ctx, keyID)
	mockRepo.AssertExpectations(t)
}
