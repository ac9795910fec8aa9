package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/service"
	"github.com/realestate-api/internal/validate"
	"github.com/realestate-api/pkg/dates"
	"github.com/realestate-api/pkg/response"
)

// BookingHandler handles booking API requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles booking creation
// POST /create_booking
func (h *BookingHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Create(payload)
	if err != nil {
		var missing *validate.MissingFieldError
		if errors.As(err, &missing) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, gin.H{
		"id":             booking.ID,
		"user_id":        booking.UserID,
		"property_id":    booking.PropertyID,
		"check_in_date":  dates.Format(booking.CheckInDate),
		"check_out_date": dates.Format(booking.CheckOutDate),
		"message":        "Booking created successfully",
	})
}

// ListAll returns every booking enriched with its property's current
// image link; bookings whose property was deleted are omitted
// GET /get_all_bookings
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.bookingService.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	list := make([]gin.H, len(bookings))
	for i, booking := range bookings {
		list[i] = gin.H{
			"user_id":             booking.UserID,
			"property_id":         booking.PropertyID,
			"check_in_date":       dates.Format(booking.CheckInDate),
			"check_out_date":      dates.Format(booking.CheckOutDate),
			"property_image_link": booking.PropertyImageLink,
		}
	}

	response.Success(c, gin.H{"bookings": list})
}

// GetByID returns a single booking with its stored image link
// GET /booking/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Booking not found")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			response.NotFound(c, "Booking not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"booking": gin.H{
			"id":                  booking.ID,
			"user_id":             booking.UserID,
			"property_id":         booking.PropertyID,
			"check_in_date":       dates.Format(booking.CheckInDate),
			"check_out_date":      dates.Format(booking.CheckOutDate),
			"property_image_link": booking.PropertyImageLink,
		},
	})
}

// Delete removes a booking
// DELETE /delete_booking/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Booking not found")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			response.NotFound(c, "Booking not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":      id,
		"message": "Booking deleted successfully",
	})
}

// RegisterRoutes registers booking routes
func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/create_booking", h.Create)
	r.GET("/get_all_bookings", h.ListAll)
	r.GET("/booking/:id", h.GetByID)
	r.DELETE("/delete_booking/:id", h.Delete)
}
