package middleware

import (
	"net/http"
	"strings"

	"mentorly/utils"

	"github.com/gin-gonic/gin"
)

// Account roles carried in the identity provider's JWT "role" claim.
const (
	RoleExpert  = "expert"
	RoleLearner = "learner"
)

// JWTAuthMiddleware verifies the bearer token minted by the identity
// provider and, when requiredRole is non-empty, enforces it. The verified
// subject and role are placed in the context as "accountID" and "role".
// Tokens found on the revocation list are rejected even when structurally
// valid.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		accountID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if utils.IsTokenRevoked(c.Request.Context(), tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set("accountID", accountID)
		c.Set("role", role)
		c.Next()
	}
}
