package domain

// User roles
const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

// User verification statuses; a fresh user carries no status at all
const (
	StatusRequested = "Requested"
	StatusVerified  = "Verified"
)

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Name      string `json:"name"`                                  // Display name from the sign-in payload
	Image     string `json:"image"`                                 // Avatar URL
	Email     string `gorm:"uniqueIndex;not null" json:"email"`     // Unique lookup key for guards and listings
	Role      string `gorm:"default:customer" json:"role"`          // Role: customer, agent or admin
	Status    string `json:"status,omitempty"`                      // Verification status: empty, Requested or Verified
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"timestamp"` // Creation timestamp in milliseconds
}
