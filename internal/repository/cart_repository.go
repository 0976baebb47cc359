package repository

import (
	"errors"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartLine, error)
	GetByID(id uint) (*models.CartLine, error)
	GetRegularByUserAndTitle(userID uint, title string) (*models.CartLine, error)
	Create(line *models.CartLine) error
	Update(line *models.CartLine) error
	DeleteByID(id uint) error
	ClearByUser(userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser returns the user's cart lines.
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// GetByID looks a cart line up by primary key. Returns nil when missing.
func (r *GormCartRepository) GetByID(id uint) (*models.CartLine, error) {
	var line models.CartLine
	if err := r.db.First(&line, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// GetRegularByUserAndTitle finds the merge target for a regular line.
// Custom lines never merge, so the lookup excludes them.
func (r *GormCartRepository) GetRegularByUserAndTitle(userID uint, title string) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("user_id = ? AND title = ? AND item_type = ?", userID, title, constants.ItemTypeRegular).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// Create inserts a cart line.
func (r *GormCartRepository) Create(line *models.CartLine) error {
	return r.db.Create(line).Error
}

// Update saves a cart line.
func (r *GormCartRepository) Update(line *models.CartLine) error {
	return r.db.Save(line).Error
}

// DeleteByID removes one cart line.
func (r *GormCartRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.CartLine{}, id).Error
}

// ClearByUser removes all of the user's cart lines and reports how many
// rows were affected.
func (r *GormCartRepository) ClearByUser(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.CartLine{})
	return result.RowsAffected, result.Error
}
