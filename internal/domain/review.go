package domain

// Review Model
type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Email      string `gorm:"index;not null" json:"email"`           // Reviewer email, used for the per-user listing
	PropertyID uint   `gorm:"index" json:"propertyId"`               // Reviewed property
	Rating     int    `json:"rating"`                                // Star rating
	Comment    string `json:"comment"`                               // Free-form review text
	CreatedAt  int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Creation timestamp in milliseconds
}
