package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/service"
	"github.com/realestate-api/internal/validate"
	"github.com/realestate-api/pkg/response"
)

// PropertyHandler handles property API requests
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create handles listing creation
// POST /create_property
func (h *PropertyHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	property, err := h.propertyService.Create(payload)
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
		"id":      property.ID,
		"title":   property.Title,
		"message": "Property created successfully",
	})
}

// GetByID returns the full field projection of one property
// GET /get_property_by_id/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Property not found")
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.NotFound(c, "Property not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"property": gin.H{
			"id":          property.ID,
			"title":       property.Title,
			"description": property.Description,
			"price":       property.Price,
			"bedrooms":    property.Bedrooms,
			"bathrooms":   property.Bathrooms,
			"location":    property.Location,
			"image_link":  property.ImageLink,
		},
	})
}

// ListAll returns the summary projection of every property
// GET /get_all_properties
func (h *PropertyHandler) ListAll(c *gin.Context) {
	properties, err := h.propertyService.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	list := make([]gin.H, len(properties))
	for i, property := range properties {
		list[i] = gin.H{
			"id":         property.ID,
			"title":      property.Title,
			"price":      property.Price,
			"location":   property.Location,
			"image_link": property.ImageLink,
		}
	}

	response.Success(c, gin.H{"properties": list})
}

// Update handles partial property updates
// PATCH /update_property/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Property not found")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	property, err := h.propertyService.Update(id, payload)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.NotFound(c, "Property not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":      property.ID,
		"title":   property.Title,
		"message": "Property updated successfully",
	})
}

// Delete removes a property
// DELETE /delete_property/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Property not found")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.NotFound(c, "Property not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":      id,
		"message": "Property deleted successfully",
	})
}

// RegisterRoutes registers property routes
func (h *PropertyHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/create_property", h.Create)
	r.GET("/get_property_by_id/:id", h.GetByID)
	r.GET("/get_all_properties", h.ListAll)
	r.PATCH("/update_property/:id", h.Update)
	r.DELETE("/delete_property/:id", h.Delete)
}
