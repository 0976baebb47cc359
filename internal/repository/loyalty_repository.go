package repository

import (
	"errors"

	"github.com/sugarloaf/bakehouse/internal/models"

	"gorm.io/gorm"
)

// LoyaltyRepository is the loyalty record data access interface.
type LoyaltyRepository interface {
	GetByUserID(userID uint) (*models.LoyaltyRecord, error)
	Upsert(record *models.LoyaltyRecord) error
}

// GormLoyaltyRepository is the GORM implementation.
type GormLoyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository creates the loyalty repository.
func NewLoyaltyRepository(db *gorm.DB) *GormLoyaltyRepository {
	return &GormLoyaltyRepository{db: db}
}

// GetByUserID looks the user's loyalty record up. Returns nil when missing.
func (r *GormLoyaltyRepository) GetByUserID(userID uint) (*models.LoyaltyRecord, error) {
	var record models.LoyaltyRecord
	if err := r.db.Where("user_id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert writes the user's loyalty record, creating it on first paid order.
func (r *GormLoyaltyRepository) Upsert(record *models.LoyaltyRecord) error {
	if record == nil {
		return nil
	}
	var existing models.LoyaltyRecord
	err := r.db.Where("user_id = ?", record.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(record).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"user_name":              record.UserName,
		"order_count":            record.OrderCount,
		"special_offer_eligible": record.SpecialOfferEligible,
		"status":                 record.Status,
	}
	return r.db.Model(&existing).Updates(updates).Error
}
