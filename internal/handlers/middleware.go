package handlers

import (
	"net/http"
	"strings"

	"mangan/internal/models"
	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware resolves the bearer token to a caller identity and stores it
// on the request context. Handlers pass that identity to services explicitly;
// nothing below this layer reads session state.
func AuthMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing bearer token"})
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired session"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireCustomer gates a route group to customer callers.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller(c).Kind != services.CallerCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "customer account required"})
			return
		}
		c.Next()
	}
}

// RequireStaff gates a route group to staff callers holding one of the given
// roles; with no roles listed, any staff role passes.
func RequireStaff(roles ...models.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := caller(c)
		if identity.Kind != services.CallerStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "staff account required"})
			return
		}
		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if identity.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "insufficient permissions"})
				return
			}
		}
		c.Next()
	}
}

func caller(c *gin.Context) *services.Identity {
	identity, _ := c.MustGet(identityKey).(*services.Identity)
	return identity
}
