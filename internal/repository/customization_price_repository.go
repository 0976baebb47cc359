package repository

import (
	"errors"

	"github.com/sugarloaf/bakehouse/internal/models"

	"gorm.io/gorm"
)

// CustomizationPriceRepository is the custom cake pricing interface.
type CustomizationPriceRepository interface {
	List() ([]models.CustomizationPrice, error)
	GetByTypeAndKey(optionType, key string) (*models.CustomizationPrice, error)
	Upsert(price *models.CustomizationPrice) error
}

// GormCustomizationPriceRepository is the GORM implementation.
type GormCustomizationPriceRepository struct {
	db *gorm.DB
}

// NewCustomizationPriceRepository creates the customization price repository.
func NewCustomizationPriceRepository(db *gorm.DB) *GormCustomizationPriceRepository {
	return &GormCustomizationPriceRepository{db: db}
}

// List returns all option prices.
func (r *GormCustomizationPriceRepository) List() ([]models.CustomizationPrice, error) {
	var prices []models.CustomizationPrice
	if err := r.db.Order("type ASC, id ASC").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// GetByTypeAndKey looks one option price up. Returns nil when missing.
func (r *GormCustomizationPriceRepository) GetByTypeAndKey(optionType, key string) (*models.CustomizationPrice, error) {
	var price models.CustomizationPrice
	if err := r.db.Where("type = ? AND key = ?", optionType, key).First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// Upsert writes one option price.
func (r *GormCustomizationPriceRepository) Upsert(price *models.CustomizationPrice) error {
	if price == nil {
		return nil
	}
	var existing models.CustomizationPrice
	err := r.db.Where("type = ? AND key = ?", price.Type, price.Key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(price).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("price", price.Price).Error
}
