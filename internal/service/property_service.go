package service

import (
	"github.com/realestate-api/internal/models"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/validate"
)

// PropertyService handles listing operations
type PropertyService struct {
	propertyRepo *repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo *repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// Create validates that all listing fields are present and persists a
// new property.
func (s *PropertyService) Create(payload map[string]any) (*models.Property, error) {
	err := validate.RequiredFields(payload,
		"title", "description", "price", "bedrooms", "bathrooms", "location", "image_link")
	if err != nil {
		return nil, err
	}

	property := &models.Property{
		Title:       asString(payload["title"]),
		Description: asString(payload["description"]),
		Price:       asFloat(payload["price"]),
		Bedrooms:    asInt(payload["bedrooms"]),
		Bathrooms:   asInt(payload["bathrooms"]),
		Location:    asString(payload["location"]),
		ImageLink:   asString(payload["image_link"]),
	}

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, err
	}

	return property, nil
}

// GetByID retrieves a property by ID
func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	return s.propertyRepo.GetByID(id)
}

// ListAll retrieves every property
func (s *PropertyService) ListAll() ([]models.Property, error) {
	return s.propertyRepo.GetAll()
}

// Update overwrites the mutable fields named in the payload.
func (s *PropertyService) Update(id uint, payload map[string]any) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	for key, value := range payload {
		switch key {
		case "title":
			property.Title = asString(value)
		case "description":
			property.Description = asString(value)
		case "price":
			property.Price = asFloat(value)
		case "bedrooms":
			property.Bedrooms = asInt(value)
		case "bathrooms":
			property.Bathrooms = asInt(value)
		case "location":
			property.Location = asString(value)
		case "image_link":
			property.ImageLink = asString(value)
		}
	}

	if err := s.propertyRepo.Update(property); err != nil {
		return nil, err
	}

	return property, nil
}

// Delete removes a property by ID. Bookings referencing it are left in
// place; the booking list skips them once the property is gone.
func (s *PropertyService) Delete(id uint) error {
	if _, err := s.propertyRepo.GetByID(id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(id)
}
