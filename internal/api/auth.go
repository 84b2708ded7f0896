package api

import (
	"net/http" // HTTP status codes

	"estate_market/internal/domain"     // Importing domain models
	"estate_market/internal/middleware" // Session cookie name
	"estate_market/internal/utils"      // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Conflict clauses for atomic upsert
)

// TokenRequest is the identity payload exchanged for a session cookie
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"` // Email must be provided
}

// SignInRequest carries the optional profile fields of a first sign-in
type SignInRequest struct {
	Name  string `json:"name"`  // Display name
	Image string `json:"image"` // Avatar URL
}

// Session cookie lifetime matches the token expiry
const cookieMaxAge = 365 * 24 * 60 * 60

// setSessionCookie writes or clears the httpOnly session cookie. Production
// serves browser clients from a different origin, which forces SameSite=None
// together with the Secure flag; local development uses Strict.
func setSessionCookie(c *gin.Context, token string, maxAge int, isProd bool) {
	if isProd {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", isProd, true)
}

// CreateTokenHandler signs a session token for the posted identity and sets
// it as the httpOnly session cookie
func CreateTokenHandler(jwtSecret string, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, err := utils.GenerateJWT(req.Email, jwtSecret) // Sign the token
		if err != nil {
			// If signing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		setSessionCookie(c, token, cookieMaxAge, isProd) // Set the session cookie
		c.JSON(http.StatusOK, gin.H{"success": true})    // Return success response
	}
}

// LogoutHandler clears the session cookie
func LogoutHandler(isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, "", -1, isProd)           // Expire the cookie immediately
		c.JSON(http.StatusOK, gin.H{"success": true}) // Return success response
	}
}

// SaveUserHandler records a user on first sign-in. The insert is keyed on the
// unique email index with a do-nothing conflict clause, so two concurrent
// first sign-ins cannot both create a row; the stored record is always
// returned unchanged on repeat calls.
func SaveUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email from the path
		var req SignInRequest     // Optional profile payload
		_ = c.ShouldBindJSON(&req)
		// New users always start as customers
		user := domain.User{Email: email, Name: req.Name, Image: req.Image, Role: domain.RoleCustomer}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}}, // Conflict target is the unique email index
			DoNothing: true,                             // Existing rows are left untouched
		}).Create(&user).Error
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("User upsert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}
		var stored domain.User // Read back the stored record
		if err := db.Where("email = ?", email).First(&stored).Error; err != nil {
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("User readback failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}
		c.JSON(http.StatusOK, stored) // Return the stored record
	}
}

// GetUserRoleHandler returns only the stored role for an email
func GetUserRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email from the path
		var user domain.User      // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			// An absent user reads as no role, matching legacy clients
			c.JSON(http.StatusOK, gin.H{"role": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": user.Role}) // Return the stored role only
	}
}
