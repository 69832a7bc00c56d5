package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/barberflow-api/internal/auth"
	"github.com/barberflow/barberflow-api/internal/httperr"
)

const (
	ContextUserID         = "userID"
	ContextOrganizationID = "organizationID"
	ContextUserRole       = "userRole"
)

// AuthMiddleware extracts and validates the bearer token. A missing or
// malformed header is 401; a token that fails signature or expiry checks is
// 403. The decoded claims become the trusted identity for the request —
// handlers never take an organization id from the URL or body.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho inválido.")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Forbidden(c, "invalid_token", "Token inválido ou expirado.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOrganizationID, claims.OrganizationID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// OrganizationID returns the tenant id attached by AuthMiddleware.
func OrganizationID(c *gin.Context) uint {
	return c.MustGet(ContextOrganizationID).(uint)
}

// UserID returns the authenticated user id attached by AuthMiddleware.
func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}
