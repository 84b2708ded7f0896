package domain

// AgentInfo is the owning agent snapshot embedded in a property listing
type AgentInfo struct {
	Name  string `json:"name"`               // Agent display name
	Email string `gorm:"index" json:"email"` // Agent email, used for ownership checks
	Image string `json:"image"`              // Agent avatar URL
}

// Property Model
type Property struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                        // Primary key
	Title       string    `gorm:"not null" json:"title"`                       // Listing title
	Description string    `json:"description"`                                 // Free-form listing description
	Image       string    `json:"image"`                                       // Listing image URL
	Location    string    `json:"location"`                                    // Human-readable location
	Price       float64   `json:"price"`                                       // Asking price
	Quantity    int       `json:"quantity"`                                    // Available units
	Agent       AgentInfo `gorm:"embedded;embeddedPrefix:agent_" json:"agent"` // Owning agent snapshot
	CreatedAt   int64     `gorm:"autoCreateTime:milli" json:"createdAt"`       // Creation timestamp in milliseconds
}
