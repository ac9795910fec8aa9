package models

import "time"

// Booking represents a reservation of a property by a user.
//
// UserID and PropertyID are plain foreign keys with no cascade rules;
// deleting the referenced rows leaves the booking dangling.
// PropertyImageLink is a denormalized copy of the property's image at
// booking time and is not kept in sync with the live property.
type Booking struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null" json:"user_id"`
	PropertyID        uint      `gorm:"not null" json:"property_id"`
	CheckInDate       time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate      time.Time `gorm:"type:date;not null" json:"check_out_date"`
	PropertyImageLink string    `gorm:"size:255" json:"property_image_link"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}
