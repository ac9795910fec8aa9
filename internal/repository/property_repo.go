package repository

import (
	"errors"

	"github.com/realestate-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
)

// PropertyRepository handles property data access
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	result := r.db.First(&property, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return &property, nil
}

// GetAll retrieves every property
func (r *PropertyRepository) GetAll() ([]models.Property, error) {
	var properties []models.Property
	result := r.db.Find(&properties)
	return properties, result.Error
}

// Update persists changes to a property
func (r *PropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

// Delete removes a property by ID
func (r *PropertyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Property{}, id).Error
}
