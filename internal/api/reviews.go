package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion for the property reference

	"estate_market/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ReviewRequest is the customer payload for recording a review
type ReviewRequest struct {
	Email      string `json:"email" binding:"required,email"` // Reviewer email must be provided
	PropertyID string `json:"propertyId" binding:"required"`  // Reviewed property id as sent by clients
	Rating     int    `json:"rating" binding:"min=0,max=5"`   // Star rating
	Comment    string `json:"comment"`                        // Free-form review text
}

// CreateReviewHandler records a review
func CreateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		propertyID, err := strconv.ParseUint(req.PropertyID, 10, 64) // Coerce the string reference
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
			return
		}
		review := domain.Review{
			Email:      req.Email,
			PropertyID: uint(propertyID),
			Rating:     req.Rating,
			Comment:    req.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			logrus.WithFields(logrus.Fields{"email": req.Email, "error": err.Error()}).Error("Review create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusCreated, review) // Return the stored review
	}
}

// ListReviewsHandler returns every review recorded by an email
func ListReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Reviewer email from the path
		if email == "" {
			// Kept from the legacy surface even though the router never matches an empty param
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		reviews := make([]domain.Review, 0) // Empty slice so the response is [] not null
		if err := db.Where("email = ?", email).Find(&reviews).Error; err != nil {
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Review listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews) // Return the review list
	}
}
