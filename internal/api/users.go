package api

import (
	"net/http" // HTTP status codes

	"estate_market/internal/domain"     // Importing domain models
	"estate_market/internal/middleware" // Context keys

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// RoleUpdateRequest is the admin payload for promoting a user
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required,oneof=customer agent admin"` // Target role
}

// RequestVerificationHandler marks a user's status as Requested. A second
// request while the first is still pending is rejected, as is a request for
// an email that was never saved.
func RequestVerificationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email from the path
		var user domain.User      // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil || user.Status == domain.StatusRequested {
			// Unknown user and pending request share the legacy conflict response
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already requested, wait for some time."})
			return
		}
		// Mark the request as pending
		if err := db.Model(&user).Update("status", domain.StatusRequested).Error; err != nil {
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Status request failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
		c.JSON(http.StatusOK, user) // Return the updated record
	}
}

// ListUsersHandler returns every user except the calling admin
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")       // Caller email from the path
		users := make([]domain.User, 0) // Empty slice so the response is [] not null
		if err := db.Where("email <> ?", email).Find(&users).Error; err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("User listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users) // Return the user list
	}
}

// UpdateUserRoleHandler sets a user's role and marks them Verified
func UpdateUserRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Target email from the path
		var req RoleUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Apply role and verification in one update
		res := db.Model(&domain.User{}).Where("email = ?", email).
			Updates(map[string]any{"role": req.Role, "status": domain.StatusVerified})
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{"email": email, "error": res.Error.Error()}).Error("Role update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}
		// No matched row means the user does not exist
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Audit log for the promotion
		logrus.WithFields(logrus.Fields{
			"email": email,                            // Target user
			"role":  req.Role,                         // New role
			"admin": c.GetString(middleware.EmailKey), // Acting admin
		}).Info("User role updated")
		c.JSON(http.StatusOK, gin.H{"success": true}) // Return success response
	}
}
