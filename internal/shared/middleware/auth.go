package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"animalovers-backend/internal/shared/response"
	"animalovers-backend/pkg/jwt"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth validates the Bearer token and rejects with the reason the
// verify-auth contract promises: missing, expired or invalid.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithReason(c, http.StatusUnauthorized, "authentication required", "missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.FailWithReason(c, http.StatusUnauthorized, "invalid authorization header format", "invalid")
			c.Abort()
			return
		}

		claims, err := manager.Verify(parts[1])
		if err != nil {
			reason := "invalid"
			if errors.Is(err, jwt.ErrExpired) {
				reason = "expired"
			}
			response.FailWithReason(c, http.StatusUnauthorized, err.Error(), reason)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role != "admin" {
			response.Fail(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
