package api

import (
	"net/http" // Liveness response

	"estate_market/internal/middleware" // Session and role guards

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// SetupRoutes registers the full HTTP surface. Guard chains are explicit per
// route because the legacy paths do not group cleanly by prefix. The two
// legacy alias paths (/all-quires/:id and /plants/quantity/:id) stay
// registered for old clients but are bound to the same handlers as their
// canonical routes.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, sender EmailSender, jwtSecret string, isProd bool) {
	session := middleware.SessionMiddleware(jwtSecret) // Cookie session guard
	adminOnly := middleware.AdminOnlyMiddleware(db)    // Admin role guard
	agentOnly := middleware.AgentOnlyMiddleware(db)    // Agent role guard

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Estate marketplace server is running")
	})

	// Session cookie
	r.POST("/jwt", CreateTokenHandler(jwtSecret, isProd))
	r.GET("/logout", LogoutHandler(isProd))

	// Users
	r.POST("/users/:email", SaveUserHandler(db))
	r.PATCH("/users/:email", session, RequestVerificationHandler(db))
	r.GET("/users/role/:email", GetUserRoleHandler(db))
	r.GET("/all-users/:email", session, adminOnly, ListUsersHandler(db))
	r.PATCH("/user/role/:email", session, adminOnly, UpdateUserRoleHandler(db))

	// Properties
	r.POST("/plants", session, agentOnly, CreatePropertyHandler(db, rdb))
	r.GET("/plants", ListFeaturedHandler(db, rdb))
	r.GET("/plants/seller", session, agentOnly, ListAgentPropertiesHandler(db))
	r.GET("/plants/admin", session, adminOnly, ListPropertiesAdminHandler(db))
	r.GET("/plants/:id", GetPropertyHandler(db))
	r.GET("/all-quires/:id", GetPropertyHandler(db))
	r.GET("/all-property", ListAllPropertiesHandler(db, rdb))
	r.DELETE("/plants/:id", session, agentOnly, DeletePropertyHandler(db, rdb))

	// Orders
	r.POST("/order", session, CreateOrderHandler(db, sender))
	r.PATCH("/plants/quantity/:id", session, CreateOrderHandler(db, sender))
	r.GET("/customer-orders/:email", session, CustomerOrdersHandler(db))
	r.GET("/seller-orders/:email", session, agentOnly, AgentOrdersHandler(db))
	r.PATCH("/orders/:id", session, agentOnly, UpdateOrderStatusHandler(db))
	r.DELETE("/orders/:id", session, CancelOrderHandler(db))

	// Reviews
	r.POST("/add-recommended", CreateReviewHandler(db))
	r.GET("/all-recommended/:email", ListReviewsHandler(db))
}
