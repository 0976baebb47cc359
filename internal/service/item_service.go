package service

import (
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

// ItemService serves the storefront catalog.
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates the catalog service.
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// List returns catalog items matching the filter.
func (s *ItemService) List(filter repository.ItemListFilter) ([]models.CatalogItem, error) {
	return s.itemRepo.List(filter)
}

// GetByID fetches one catalog item.
func (s *ItemService) GetByID(id uint) (*models.CatalogItem, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}
