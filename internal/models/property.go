package models

import "time"

// Property represents a real-estate listing.
type Property struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Bedrooms    int       `gorm:"not null" json:"bedrooms"`
	Bathrooms   int       `gorm:"not null" json:"bathrooms"`
	Location    string    `gorm:"size:100;not null" json:"location"`
	ImageLink   string    `gorm:"size:255" json:"image_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Property model
func (Property) TableName() string {
	return "properties"
}
