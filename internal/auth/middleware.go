package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PrincipalResolver checks that a token subject still maps to a stored
// identity. Customer and vendor repositories both satisfy it.
type PrincipalResolver interface {
	PrincipalExists(ctx context.Context, id int) (bool, error)
}

// RequirePrincipal validates the bearer token, checks that it was issued for
// the expected principal kind and that the principal still exists, then puts
// the principal id on the request context.
func RequirePrincipal(secret, kind string, resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
			}
			c.Abort()
			return
		}

		if claims.PrincipalKind != kind {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token not valid for this resource"})
			c.Abort()
			return
		}

		exists, err := resolver.PrincipalExists(c.Request.Context(), claims.PrincipalID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			c.Abort()
			return
		}
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Principal no longer exists"})
			c.Abort()
			return
		}

		c.Set("principal_id", claims.PrincipalID)
		c.Set("principal_kind", claims.PrincipalKind)

		c.Next()
	}
}

func GetPrincipalID(c *gin.Context) (int, bool) {
	principalID, exists := c.Get("principal_id")
	if !exists {
		return 0, false
	}

	id, ok := principalID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}
