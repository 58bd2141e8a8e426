package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/interfaces/http/response"
	"scanhub.backend/internal/usecases"
)

const (
	// AuthorizationHeader is the header key for bearer tokens
	AuthorizationHeader = "Authorization"
	// APIKeyHeader is the header key for API keys
	APIKeyHeader = "X-API-Key"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// PrincipalKey is the context key for the resolved principal
	PrincipalKey = "principal"
)

// AuthMiddleware resolves the request's credentials into a Principal.
// An API key, when presented, takes strict precedence over a bearer
// token; see usecases.PrincipalResolver.
func AuthMiddleware(resolver *usecases.PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := entities.PresentedCredentials{
			APIKey: c.GetHeader(APIKeyHeader),
		}

		if authHeader := c.GetHeader(AuthorizationHeader); strings.HasPrefix(authHeader, BearerPrefix) {
			presented.BearerToken = strings.TrimPrefix(authHeader, BearerPrefix)
		}

		principal, err := resolver.Resolve(c.Request.Context(), presented)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireAdmin gates the request on the admin role.
func RequireAdmin() gin.HandlerFunc {
	return requireGate(usecases.RequireAdmin)
}

// RequireAnyRole gates the request on having at least one role.
func RequireAnyRole() gin.HandlerFunc {
	return requireGate(usecases.RequireAnyRole)
}

func requireGate(gate func(*entities.Principal) (*entities.Principal, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.AbortError(c, domainerrors.ErrMissingCredentials)
			return
		}

		if _, err := gate(principal); err != nil {
			response.AbortError(c, err)
			return
		}

		c.Next()
	}
}

// GetPrincipal gets the resolved principal from the gin context.
func GetPrincipal(c *gin.Context) (*entities.Principal, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := val.(*entities.Principal)
	return principal, ok
}
