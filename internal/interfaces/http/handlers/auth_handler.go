package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/interfaces/http/middleware"
	"scanhub.backend/internal/interfaces/http/response"
	"scanhub.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login handles password login
// POST /api/v1/token
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
	})
}

// GetMe returns the authenticated user
// GET /api/v1/users/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.ErrMissingCredentials)
		return
	}

	user := principal.User
	response.Success(c, http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"isActive": user.IsActive,
		"roles":    user.RoleNames(),
		"scheme":   principal.Scheme,
	})
}

// GetMyRoles returns the authenticated user's role names
// GET /api/v1/users/me/roles
func (h *AuthHandler) GetMyRoles(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.ErrMissingCredentials)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"roles": principal.User.RoleNames(),
	})
}
