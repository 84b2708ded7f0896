package domain

// Order statuses
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderDelivered  = "Delivered"
)

// CustomerInfo is the buyer snapshot embedded in an order
type CustomerInfo struct {
	Name  string `json:"name"`               // Buyer display name
	Email string `gorm:"index" json:"email"` // Buyer email, used for the customer order listing
}

// Order Model
type Order struct {
	ID         uint         `gorm:"primaryKey" json:"id"`                              // Primary key
	Customer   CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customer"` // Buyer snapshot
	Agent      string       `gorm:"index" json:"agent"`                                // Owning agent's email
	PropertyID uint         `gorm:"index" json:"propertyId"`                           // Reference to the ordered property
	Price      float64      `json:"price"`                                             // Price at order time
	Address    string       `json:"address"`                                           // Delivery address
	Status     string       `gorm:"default:Pending" json:"status"`                     // Order status: Pending, Processing, Delivered
	CreatedAt  int64        `gorm:"autoCreateTime:milli" json:"createdAt"`             // Creation timestamp in milliseconds
}
