package service

import (
	"errors"
	"testing"
	"time"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"

	"gorm.io/gorm"
)

func newLoyaltyEnv(t *testing.T, threshold int) (*gorm.DB, *LoyaltyService, *models.User) {
	t.Helper()
	db := setupServiceDB(t)
	user := &models.User{Name: "Cara", Email: "cara@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	svc := NewLoyaltyService(
		repository.NewLoyaltyRepository(db),
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		threshold,
	)
	return db, svc, user
}

func seedPaidOrders(t *testing.T, db *gorm.DB, userID uint, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		order := models.Order{
			OrderID:        FormatOrderID(int64(100 + i)),
			UserID:         userID,
			PaymentStatus:  constants.PaymentStatusPaid,
			Status:         constants.OrderStatusPickedUp,
			PickupDateTime: time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("seed paid order failed: %v", err)
		}
	}
}

func TestRecountBelowThreshold(t *testing.T) {
	db, svc, user := newLoyaltyEnv(t, 3)
	seedPaidOrders(t, db, user.ID, 2)

	if err := svc.Recount(user.ID); err != nil {
		t.Fatalf("recount failed: %v", err)
	}

	record, err := svc.GetStatus(user.ID)
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if record.OrderCount != 2 {
		t.Fatalf("order count want 2 got %d", record.OrderCount)
	}
	if record.Status != constants.LoyaltyStatusInactive || record.SpecialOfferEligible {
		t.Fatalf("record should be inactive: %+v", record)
	}
}

func TestRecountReachesThreshold(t *testing.T) {
	db, svc, user := newLoyaltyEnv(t, 3)
	seedPaidOrders(t, db, user.ID, 3)

	// Unpaid orders must not count.
	unpaid := models.Order{OrderID: "999", UserID: user.ID, PaymentStatus: constants.PaymentStatusPending, PickupDateTime: time.Now()}
	if err := db.Create(&unpaid).Error; err != nil {
		t.Fatalf("seed unpaid order failed: %v", err)
	}

	if err := svc.Recount(user.ID); err != nil {
		t.Fatalf("recount failed: %v", err)
	}

	record, err := svc.GetStatus(user.ID)
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if record.OrderCount != 3 {
		t.Fatalf("order count want 3 got %d", record.OrderCount)
	}
	if record.Status != constants.LoyaltyStatusActive || !record.SpecialOfferEligible {
		t.Fatalf("record should be active: %+v", record)
	}
	if record.UserName != "Cara" {
		t.Fatalf("user name snapshot missing: %+v", record)
	}
}

func TestRecountUnknownUser(t *testing.T) {
	_, svc, _ := newLoyaltyEnv(t, 3)
	if err := svc.Recount(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
	if _, err := svc.GetStatus(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
