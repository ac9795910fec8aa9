package repository

import (
	"errors"

	"github.com/realestate-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

// BookingRepository handles booking data access
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking. Referential integrity of UserID and
// PropertyID is not checked here; dangling references are allowed.
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	result := r.db.First(&booking, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, result.Error
	}
	return &booking, nil
}

// GetAll retrieves every booking
func (r *BookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	result := r.db.Find(&bookings)
	return bookings, result.Error
}

// Delete removes a booking by ID
func (r *BookingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Booking{}, id).Error
}
