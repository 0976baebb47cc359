package repository

import (
	"errors"
	"strings"

	"github.com/sugarloaf/bakehouse/internal/models"

	"gorm.io/gorm"
)

// ItemRepository is the catalog data access interface.
type ItemRepository interface {
	List(filter ItemListFilter) ([]models.CatalogItem, error)
	GetByID(id uint) (*models.CatalogItem, error)
	Create(item *models.CatalogItem) error
	Update(item *models.CatalogItem) error
}

// GormItemRepository is the GORM implementation.
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates the catalog repository.
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// List returns catalog items matching the filter.
func (r *GormItemRepository) List(filter ItemListFilter) ([]models.CatalogItem, error) {
	query := r.db.Model(&models.CatalogItem{})
	if filter.Category != "" {
		operator := likeOperatorByDialect(dbDialectName(r.db))
		query = query.Where("category "+operator+" ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildSearchCondition(r.db, []string{"title", "description"})
		query = query.Where(condition, repeatLikeArgs("%"+search+"%", argCount)...)
	}
	if filter.OnlyAvailable {
		query = query.Where("available = ?", true)
	}

	var items []models.CatalogItem
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID looks an item up by primary key. Returns nil when missing.
func (r *GormItemRepository) GetByID(id uint) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a catalog item.
func (r *GormItemRepository) Create(item *models.CatalogItem) error {
	return r.db.Create(item).Error
}

// Update saves a catalog item.
func (r *GormItemRepository) Update(item *models.CatalogItem) error {
	return r.db.Save(item).Error
}
