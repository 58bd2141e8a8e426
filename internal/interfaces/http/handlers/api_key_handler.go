package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/interfaces/http/middleware"
	"scanhub.backend/internal/interfaces/http/response"
	"scanhub.backend/internal/usecases"
)

// ApiKeyHandler handles API-key lifecycle endpoints. All operations
// are scoped to the authenticated owner.
type ApiKeyHandler struct {
	apiKeyUsecase *usecases.ApiKeyUsecase
}

// NewApiKeyHandler creates a new API key handler
func NewApiKeyHandler(apiKeyUsecase *usecases.ApiKeyUsecase) *ApiKeyHandler {
	return &ApiKeyHandler{apiKeyUsecase: apiKeyUsecase}
}

// CreateApiKey creates a new API key; the plaintext is in this
// response and nowhere else, ever.
// POST /api/v1/api-keys
func (h *ApiKeyHandler) CreateApiKey(c *gin.Context) {
	var input entities.CreateApiKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.ErrMissingCredentials)
		return
	}

	resp, err := h.apiKeyUsecase.Create(c.Request.Context(), principal.User.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListApiKeys lists the caller's API keys
// GET /api/v1/api-keys
func (h *ApiKeyHandler) ListApiKeys(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.ErrMissingCredentials)
		return
	}

	keys, err := h.apiKeyUsecase.List(c.Request.Context(), principal.User.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, keys)
}

// ExtendApiKey extends an expiring key by N days
// PUT /api/v1/api-keys/:id/extend
func (h *ApiKeyHandler) ExtendApiKey(c *gin.Context) {
	keyID, principal, ok := h.keyRequest(c)
	if !ok {
		return
	}

	var input entities.ExtendApiKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	key, err := h.apiKeyUsecase.Extend(c.Request.Context(), principal.User.ID, keyID, input.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, key)
}

// SuspendApiKey flips the key's active flag (legacy toggle endpoint;
// prefer SetApiKeyActive for an idempotent state change)
// PUT /api/v1/api-keys/:id/suspend
func (h *ApiKeyHandler) SuspendApiKey(c *gin.Context) {
	keyID, principal, ok := h.keyRequest(c)
	if !ok {
		return
	}

	key, err := h.apiKeyUsecase.Toggle(c.Request.Context(), principal.User.ID, keyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, key)
}

// SetApiKeyActive sets the key's active flag to the requested state
// PUT /api/v1/api-keys/:id/active
func (h *ApiKeyHandler) SetApiKeyActive(c *gin.Context) {
	keyID, principal, ok := h.keyRequest(c)
	if !ok {
		return
	}

	var input entities.SetApiKeyActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.apiKeyUsecase.SetActive(c.Request.Context(), principal.User.ID, keyID, *input.Active); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": keyID, "isActive": *input.Active})
}

// RevokeApiKey deletes the key permanently
// DELETE /api/v1/api-keys/:id
func (h *ApiKeyHandler) RevokeApiKey(c *gin.Context) {
	keyID, principal, ok := h.keyRequest(c)
	if !ok {
		return
	}

	if err := h.apiKeyUsecase.Revoke(c.Request.Context(), principal.User.ID, keyID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "API key revoked"})
}

func (h *ApiKeyHandler) keyRequest(c *gin.Context) (uuid.UUID, *entities.Principal, bool) {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid API key id"))
		return uuid.Nil, nil, false
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.ErrMissingCredentials)
		return uuid.Nil, nil, false
	}

	return keyID, principal, true
}
