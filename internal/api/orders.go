package api

import (
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
	"strconv"  // String conversion for ids

	"estate_market/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// EmailSender is the outbound notification contract. Delivery runs outside
// the request path; failures are logged and never affect the HTTP response.
type EmailSender interface {
	Send(to, subject, message string) error
}

// OrderRequest is the customer payload for placing an order. The property
// reference arrives as a string and is coerced to the store's numeric id.
type OrderRequest struct {
	Customer struct {
		Name  string `json:"name"`                           // Buyer display name
		Email string `json:"email" binding:"required,email"` // Buyer email must be provided
	} `json:"customer" binding:"required"` // Buyer snapshot
	Agent      string  `json:"agent" binding:"required,email"` // Owning agent's email
	PropertyID string  `json:"propertyId" binding:"required"`  // Ordered property id as sent by clients
	Price      float64 `json:"price"`                          // Price at order time
	Address    string  `json:"address"`                        // Delivery address
	Status     string  `json:"status"`                         // Optional initial status, defaults to Pending
}

// EnrichedOrder is an order row with selected property fields joined on.
// The customer report carries image and location as well; the agent report
// fills the title only.
type EnrichedOrder struct {
	ID            uint    `json:"id"`                                         // Order id
	CustomerName  string  `gorm:"column:customer_name" json:"customerName"`   // Buyer display name
	CustomerEmail string  `gorm:"column:customer_email" json:"customerEmail"` // Buyer email
	Agent         string  `json:"agent"`                                      // Owning agent's email
	PropertyID    uint    `json:"propertyId"`                                 // Ordered property id
	Price         float64 `json:"price"`                                      // Price at order time
	Address       string  `json:"address"`                                    // Delivery address
	Status        string  `json:"status"`                                     // Order status
	CreatedAt     int64   `json:"createdAt"`                                  // Creation timestamp in milliseconds
	Title         string  `json:"title"`                                      // Joined property title
	Image         string  `json:"image,omitempty"`                            // Joined property image, customer report only
	Location      string  `json:"location,omitempty"`                         // Joined property location, customer report only
}

// Order columns selected by both report variants
const orderColumns = "orders.id, orders.customer_name, orders.customer_email, orders.agent, " +
	"orders.property_id, orders.price, orders.address, orders.status, orders.created_at"

// CreateOrderHandler stores a new order and fires the two order
// notifications. The HTTP response reflects only the insert result.
func CreateOrderHandler(db *gorm.DB, sender EmailSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderRequest // Bind JSON request to struct
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
		status := req.Status // Initial status
		if status == "" {
			status = domain.OrderPending // Default to Pending
		}
		order := domain.Order{
			Customer:   domain.CustomerInfo{Name: req.Customer.Name, Email: req.Customer.Email},
			Agent:      req.Agent,
			PropertyID: uint(propertyID),
			Price:      req.Price,
			Address:    req.Address,
			Status:     status,
		}
		if err := db.Create(&order).Error; err != nil {
			logrus.WithFields(logrus.Fields{"customer": order.Customer.Email, "error": err.Error()}).Error("Order create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		// Fire-and-forget notifications, only after a successful insert
		go sendOrderEmails(sender, order)
		// Return success with the new order id
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "orderId": order.ID})
	}
}

// sendOrderEmails sends the customer confirmation and the agent task alert.
// Each send is independent; one failing does not stop the other.
func sendOrderEmails(sender EmailSender, order domain.Order) {
	// To customer
	err := sender.Send(order.Customer.Email, "Order Successful",
		fmt.Sprintf("You've placed an order successfully. Transaction Id: %d", order.ID))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,             // Order id
			"to":       order.Customer.Email, // Recipient
			"error":    err.Error(),          // Error message
		}).Error("Customer confirmation email failed")
	}
	// To agent
	err = sender.Send(order.Agent, "Hurray!, You have an order to process.",
		fmt.Sprintf("Get the property ready for %s", order.Customer.Name))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,    // Order id
			"to":       order.Agent, // Recipient
			"error":    err.Error(), // Error message
		}).Error("Agent task alert email failed")
	}
}

// CustomerOrdersHandler returns a customer's orders enriched with the title,
// image and location of the referenced property. The inner join drops orders
// whose property no longer exists; see DESIGN.md for that decision.
func CustomerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")        // Customer email from the path
		rows := make([]EnrichedOrder, 0) // Empty slice so the response is [] not null
		err := db.Table("orders").
			Select(orderColumns+", properties.title, properties.image, properties.location").
			Joins("INNER JOIN properties ON properties.id = orders.property_id").
			Where("orders.customer_email = ?", email).
			Order("orders.created_at DESC").
			Scan(&rows).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{"customer": email, "error": err.Error()}).Error("Customer order report failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, rows) // Return the enriched listing
	}
}

// AgentOrdersHandler returns an agent's incoming orders with the property
// title joined on. Same join semantics as the customer report.
func AgentOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")        // Agent email from the path
		rows := make([]EnrichedOrder, 0) // Empty slice so the response is [] not null
		err := db.Table("orders").
			Select(orderColumns+", properties.title").
			Joins("INNER JOIN properties ON properties.id = orders.property_id").
			Where("orders.agent = ?", email).
			Order("orders.created_at DESC").
			Scan(&rows).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{"agent": email, "error": err.Error()}).Error("Agent order report failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, rows) // Return the enriched listing
	}
}

// OrderStatusRequest is the agent payload for moving an order along
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"` // New status must be provided
}

// UpdateOrderStatusHandler sets the status of an order
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the path id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var req OrderStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Apply the status change
		res := db.Model(&domain.Order{}).Where("id = ?", id).Update("status", req.Status)
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{"id": id, "error": res.Error.Error()}).Error("Order status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		// No matched row means the order does not exist
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true}) // Return success response
	}
}

// CancelOrderHandler deletes an order unless it was already delivered
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the path id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var order domain.Order // Fetch order from database
		if err := db.First(&order, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		// A delivered order can no longer be cancelled
		if order.Status == domain.OrderDelivered {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot cancel once the product is delivered!"})
			return
		}
		if err := db.Delete(&order).Error; err != nil {
			logrus.WithFields(logrus.Fields{"id": id, "error": err.Error()}).Error("Order cancel failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true}) // Return success response
	}
}
