package middleware

import (
	"net/http" // HTTP status codes

	"estate_market/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// requireRole re-reads the caller's user row on each request and rejects the
// request unless the stored role matches. Runs after SessionMiddleware.
func requireRole(db *gorm.DB, role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(EmailKey) // Get caller email from context
		// Check if the session guard ran first
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			// Unknown user gets the same forbidden response as a role mismatch
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		// Check the stored role
		if user.Role != role {
			// If it does not match, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		// Role matches, proceed to the next handler
		c.Next()
	}
}

// AdminOnlyMiddleware restricts a route group to admin users
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, domain.RoleAdmin, "Forbidden Access! Admin Only Actions!")
}

// AgentOnlyMiddleware restricts a route group to agent users
func AgentOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, domain.RoleAgent, "Forbidden Access! Agent Only Actions!")
}
