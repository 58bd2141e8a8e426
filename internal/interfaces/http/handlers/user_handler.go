package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/interfaces/http/response"
	"scanhub.backend/internal/usecases"
)

// UserHandler handles admin user management endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser creates a user account
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// ListUsers lists user accounts with an optional ?search= filter
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// UpdateStatus enables or disables an account
// PUT /api/v1/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var input entities.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userUsecase.SetStatus(c.Request.Context(), userID, *input.IsActive); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": userID, "isActive": *input.IsActive})
}

// UpdatePassword replaces an account's password
// PUT /api/v1/users/:id/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var input entities.UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userUsecase.SetPassword(c.Request.Context(), userID, input.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "password updated"})
}

// UpdateRoles replaces an account's role set
// PUT /api/v1/users/:id/roles
func (h *UserHandler) UpdateRoles(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var input entities.UpdateRolesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.ReplaceRoles(c.Request.Context(), userID, input.Roles)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return uuid.Nil, false
	}
	return userID, true
}
