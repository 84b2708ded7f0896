package middleware

import (
	"net/http" // HTTP status codes

	"estate_market/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// CookieName is the session cookie set by the /jwt endpoint
const CookieName = "token"

// EmailKey is the context key the session guard stores the caller email under
const EmailKey = "userEmail"

// SessionMiddleware validates the signed session cookie and stores the
// caller's email in the request context. It must short-circuit before any
// database access happens downstream.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName) // Get session cookie
		// Check if the cookie is present
		if err != nil || tokenStr == "" {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Verify and decode the token
		if err != nil {
			// A tampered or expired token fails the same way as a missing one
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		c.Set(EmailKey, claims.Email) // Store caller email in context
		c.Next()                      // Proceed to the next handler
	}
}
