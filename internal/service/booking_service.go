package service

import (
	"errors"

	"github.com/realestate-api/internal/models"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/validate"
	"github.com/realestate-api/pkg/dates"
)

// BookingService handles reservation operations
type BookingService struct {
	bookingRepo  *repository.BookingRepository
	propertyRepo *repository.PropertyRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo *repository.BookingRepository, propertyRepo *repository.PropertyRepository) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

// Create validates the payload, parses both dates through the fixed
// "Dth Mon YYYY" pattern and persists the booking. The referenced user
// and property IDs are not checked for existence.
func (s *BookingService) Create(payload map[string]any) (*models.Booking, error) {
	err := validate.RequiredFields(payload,
		"user_id", "property_id", "check_in_date", "check_out_date")
	if err != nil {
		return nil, err
	}

	checkIn, err := dates.Parse(asString(payload["check_in_date"]))
	if err != nil {
		return nil, err
	}
	checkOut, err := dates.Parse(asString(payload["check_out_date"]))
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:            asUint(payload["user_id"]),
		PropertyID:        asUint(payload["property_id"]),
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		PropertyImageLink: asString(payload["property_image_link"]),
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListAll retrieves every booking whose property still exists, with
// PropertyImageLink replaced by the property's current image link.
// Bookings whose property has been deleted are silently omitted.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	stored, err := s.bookingRepo.GetAll()
	if err != nil {
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(stored))
	for _, booking := range stored {
		property, err := s.propertyRepo.GetByID(booking.PropertyID)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				continue
			}
			return nil, err
		}
		booking.PropertyImageLink = property.ImageLink
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetByID retrieves a single booking. Unlike ListAll this returns the
// image link stored on the booking itself, which may be stale relative
// to the live property. Known inconsistency, kept deliberately.
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// Delete removes a booking by ID
func (s *BookingService) Delete(id uint) error {
	if _, err := s.bookingRepo.GetByID(id); err != nil {
		return err
	}
	return s.bookingRepo.Delete(id)
}
