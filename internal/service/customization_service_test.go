package service

import (
	"context"
	"testing"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

func TestListAndSetPrices(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCustomizationService(repository.NewCustomizationPriceRepository(db))
	ctx := context.Background()

	prices, err := svc.ListPrices(ctx)
	if err != nil {
		t.Fatalf("list prices failed: %v", err)
	}
	if len(prices) != 0 {
		t.Fatalf("fresh sheet should be empty, got %d", len(prices))
	}

	layer := &models.CustomizationPrice{Type: constants.CustomizationTypeLayer, Key: "2", Price: models.NewMoneyFromFloat(150)}
	if err := svc.SetPrice(ctx, layer); err != nil {
		t.Fatalf("set price failed: %v", err)
	}
	shape := &models.CustomizationPrice{Type: constants.CustomizationTypeShape, Key: "heart", Price: models.NewMoneyFromFloat(100)}
	if err := svc.SetPrice(ctx, shape); err != nil {
		t.Fatalf("set price failed: %v", err)
	}

	prices, err = svc.ListPrices(ctx)
	if err != nil {
		t.Fatalf("list prices failed: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("price sheet want 2 rows got %d", len(prices))
	}

	// Upsert on the same type/key overwrites, no duplicate row.
	layer.Price = models.NewMoneyFromFloat(175)
	if err := svc.SetPrice(ctx, layer); err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	prices, err = svc.ListPrices(ctx)
	if err != nil {
		t.Fatalf("list prices failed: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("price sheet want 2 rows after update got %d", len(prices))
	}
	for _, price := range prices {
		if price.Type == constants.CustomizationTypeLayer && price.Key == "2" && price.Price.String() != "175.00" {
			t.Fatalf("layer price want 175.00 got %s", price.Price.String())
		}
	}
}
