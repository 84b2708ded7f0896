package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion for path ids
	"time"     // Cache TTL

	"estate_market/internal/domain"     // Importing domain models
	"estate_market/internal/middleware" // Context keys
	"estate_market/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Cache keys for the public property listings
const (
	featuredCacheKey = "plants:featured" // First-20 home page listing
	allCacheKey      = "plants:all"      // Full public listing
	listingCacheTTL  = 60 * time.Second  // Listing cache TTL
)

// PropertyRequest is the agent payload for a new listing
type PropertyRequest struct {
	Title       string  `json:"title" binding:"required"`         // Listing title must be provided
	Description string  `json:"description"`                      // Free-form description
	Image       string  `json:"image"`                            // Listing image URL
	Location    string  `json:"location"`                         // Human-readable location
	Price       float64 `json:"price" binding:"required,gt=0"`    // Asking price
	Quantity    int     `json:"quantity" binding:"required,gt=0"` // Available units
	Agent       struct {
		Name  string `json:"name"`  // Agent display name
		Image string `json:"image"` // Agent avatar URL
	} `json:"agent"` // Agent profile snapshot; the email always comes from the session
}

// CreatePropertyHandler stores a new listing owned by the calling agent
func CreatePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PropertyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Ownership comes from the verified session, never from the body
		property := domain.Property{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			Location:    req.Location,
			Price:       req.Price,
			Quantity:    req.Quantity,
			Agent: domain.AgentInfo{
				Name:  req.Agent.Name,
				Email: c.GetString(middleware.EmailKey),
				Image: req.Agent.Image,
			},
		}
		if err := db.Create(&property).Error; err != nil {
			logrus.WithFields(logrus.Fields{"agent": property.Agent.Email, "error": err.Error()}).Error("Property create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
			return
		}
		// Invalidate public listing caches after the write
		_ = utils.DeleteCache(context.Background(), rdb, featuredCacheKey, allCacheKey)
		c.JSON(http.StatusCreated, property) // Return the stored listing
	}
}

// ListFeaturedHandler returns the first 20 properties for the public home
// page, served from cache when possible
func ListFeaturedHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Property
		// Try to get cached response
		found, err := utils.GetCache(ctx, rdb, featuredCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Serve from cache
			return
		}
		properties := make([]domain.Property, 0) // Empty slice so the response is [] not null
		if err := db.Limit(20).Find(&properties).Error; err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Featured listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, featuredCacheKey, properties, listingCacheTTL)
		c.JSON(http.StatusOK, properties) // Return the listing
	}
}

// ListAllPropertiesHandler returns every property for public browsing,
// served from cache when possible
func ListAllPropertiesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Property
		// Try to get cached response
		found, err := utils.GetCache(ctx, rdb, allCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Serve from cache
			return
		}
		properties := make([]domain.Property, 0) // Empty slice so the response is [] not null
		if err := db.Find(&properties).Error; err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Property listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, allCacheKey, properties, listingCacheTTL)
		c.JSON(http.StatusOK, properties) // Return the listing
	}
}

// ListPropertiesAdminHandler returns every property, always fresh from the
// store for the admin dashboard
func ListPropertiesAdminHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		properties := make([]domain.Property, 0) // Empty slice so the response is [] not null
		if err := db.Find(&properties).Error; err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Admin property listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}
		c.JSON(http.StatusOK, properties) // Return the listing
	}
}

// ListAgentPropertiesHandler returns the calling agent's own inventory
func ListAgentPropertiesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.EmailKey) // Caller email from the session
		properties := make([]domain.Property, 0)  // Empty slice so the response is [] not null
		if err := db.Where("agent_email = ?", email).Find(&properties).Error; err != nil {
			logrus.WithFields(logrus.Fields{"agent": email, "error": err.Error()}).Error("Agent inventory failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}
		c.JSON(http.StatusOK, properties) // Return the inventory
	}
}

// GetPropertyHandler fetches a single property by id
func GetPropertyHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the path id
		if err != nil {
			// A malformed id cannot match any property
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
			return
		}
		var property domain.Property // Fetch property from database
		if err := db.First(&property, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusOK, property) // Return the property
	}
}

// DeletePropertyHandler removes a listing. The delete is scoped to the
// calling agent's email, so an agent cannot remove another agent's property;
// a non-owned id reads as not found.
func DeletePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the path id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
			return
		}
		email := c.GetString(middleware.EmailKey) // Caller email from the session
		// Delete only when the caller owns the row
		res := db.Where("id = ? AND agent_email = ?", id, email).Delete(&domain.Property{})
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{"id": id, "agent": email, "error": res.Error.Error()}).Error("Property delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
			return
		}
		// No matched row: absent id or not the owner
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		// Invalidate public listing caches after the write
		_ = utils.DeleteCache(context.Background(), rdb, featuredCacheKey, allCacheKey)
		c.JSON(http.StatusOK, gin.H{"success": true}) // Return success response
	}
}
