package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "scanhub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP status.
func Error(c *gin.Context, err error) {
	status := domainerrors.StatusFor(err)

	message := err.Error()
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	if status == 500 {
		// Never leak internals.
		message = "internal server error"
	}

	c.JSON(status, gin.H{"error": message})
}

// AbortError sends an error response and stops the handler chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
