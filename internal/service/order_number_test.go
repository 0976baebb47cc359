package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.CatalogItem{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.Counter{},
		&models.LoyaltyRecord{},
		&models.CustomizationPrice{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newOrderNumberService(db *gorm.DB) *OrderNumberService {
	return NewOrderNumberService(db, repository.NewCounterRepository(db), repository.NewOrderRepository(db))
}

func TestFormatOrderID(t *testing.T) {
	cases := map[int64]string{
		1:    "001",
		42:   "042",
		999:  "999",
		1000: "1000",
	}
	for value, want := range cases {
		if got := FormatOrderID(value); got != want {
			t.Fatalf("FormatOrderID(%d) want %s got %s", value, want, got)
		}
	}
}

func TestNextOrderIDSequential(t *testing.T) {
	db := setupServiceDB(t)
	svc := newOrderNumberService(db)

	want := []string{"001", "002", "003"}
	for _, expected := range want {
		got, err := svc.NextOrderID()
		if err != nil {
			t.Fatalf("next order id failed: %v", err)
		}
		if got != expected {
			t.Fatalf("order id want %s got %s", expected, got)
		}
	}
}

func TestNextOrderIDConcurrent(t *testing.T) {
	db := setupServiceDB(t)
	svc := newOrderNumberService(db)

	const callers = 16
	ids := make(chan string, callers)
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.NextOrderID()
			if err != nil {
				errs <- err
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent next order id failed: %v", err)
	}
	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("order id %s handed out twice", id)
		}
		seen[id] = true
	}
	if len(seen) != callers {
		t.Fatalf("want %d distinct order ids got %d", callers, len(seen))
	}
}

func TestNextOrderIDSkipsTaken(t *testing.T) {
	db := setupServiceDB(t)
	svc := newOrderNumberService(db)

	taken := models.Order{OrderID: "001", UserID: 1, PickupDateTime: time.Now()}
	if err := db.Create(&taken).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	got, err := svc.NextOrderID()
	if err != nil {
		t.Fatalf("next order id failed: %v", err)
	}
	if got != "002" {
		t.Fatalf("order id want 002 got %s", got)
	}
}

func TestResyncOrderIDsPickupSequence(t *testing.T) {
	db := setupServiceDB(t)
	svc := newOrderNumberService(db)

	base := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{OrderID: "005", UserID: 1, PickupDateTime: base.Add(3 * time.Hour)},
		{OrderID: "042", UserID: 1, PickupDateTime: base.Add(1 * time.Hour)},
		{OrderID: "007", UserID: 1, PickupDateTime: base.Add(2 * time.Hour)},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	if err := svc.ResyncOrderIDs(); err != nil {
		t.Fatalf("resync failed: %v", err)
	}

	// New numbers start past 042 and follow pickup time.
	want := map[uint]string{
		orders[1].ID: "043",
		orders[2].ID: "044",
		orders[0].ID: "045",
	}
	for id, expected := range want {
		var reloaded models.Order
		if err := db.First(&reloaded, id).Error; err != nil {
			t.Fatalf("reload order %d failed: %v", id, err)
		}
		if reloaded.OrderID != expected {
			t.Fatalf("order %d want %s got %s", id, expected, reloaded.OrderID)
		}
	}
}

func TestResyncOrderIDsEmptyTable(t *testing.T) {
	db := setupServiceDB(t)
	svc := newOrderNumberService(db)
	if err := svc.ResyncOrderIDs(); err != nil {
		t.Fatalf("resync on empty table failed: %v", err)
	}
}
