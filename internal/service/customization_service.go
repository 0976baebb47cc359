package service

import (
	"context"
	"time"

	"github.com/sugarloaf/bakehouse/internal/cache"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

const customizationPriceCacheKey = "customization:prices"
const customizationPriceCacheTTL = 5 * time.Minute

// CustomizationService serves the custom cake option price sheet.
// The sheet changes rarely, so reads go through the cache.
type CustomizationService struct {
	priceRepo repository.CustomizationPriceRepository
}

// NewCustomizationService creates the customization service.
func NewCustomizationService(priceRepo repository.CustomizationPriceRepository) *CustomizationService {
	return &CustomizationService{priceRepo: priceRepo}
}

// ListPrices returns all option prices, cache-first.
func (s *CustomizationService) ListPrices(ctx context.Context) ([]models.CustomizationPrice, error) {
	var cached []models.CustomizationPrice
	if hit, err := cache.GetJSON(ctx, customizationPriceCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	prices, err := s.priceRepo.List()
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, customizationPriceCacheKey, prices, customizationPriceCacheTTL)
	return prices, nil
}

// SetPrice writes one option price and drops the cached sheet.
func (s *CustomizationService) SetPrice(ctx context.Context, price *models.CustomizationPrice) error {
	if err := s.priceRepo.Upsert(price); err != nil {
		return err
	}
	return cache.Del(ctx, customizationPriceCacheKey)
}
