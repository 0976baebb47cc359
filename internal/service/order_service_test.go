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

func newOrderEnv(t *testing.T) (*gorm.DB, *OrderService, *models.User) {
	t.Helper()
	db := setupServiceDB(t)
	user := &models.User{Name: "Ana", Email: "ana@example.com", AuthType: constants.AuthTypeLocal, Role: constants.UserRoleCustomer}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	numberSvc := NewOrderNumberService(db, repository.NewCounterRepository(db), orderRepo)
	return db, NewOrderService(orderRepo, userRepo, numberSvc), user
}

func TestCreateOrderSnapshotsCustomer(t *testing.T) {
	_, svc, user := newOrderEnv(t)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID: user.ID,
		Lines: []OrderLineInput{
			{Title: "Classic Chocolate Cake", Price: models.NewMoneyFromFloat(350), Quantity: 1},
			{ItemType: constants.ItemTypeCustom, Title: "Custom Cake", Price: models.NewMoneyFromFloat(500), Quantity: 2, Flavor: "ube"},
		},
		TotalAmount:    models.NewMoneyFromFloat(1350),
		PickupDateTime: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if order.OrderID != "001" {
		t.Fatalf("order id want 001 got %s", order.OrderID)
	}
	if order.UserName != "Ana" || order.UserEmail != "ana@example.com" {
		t.Fatalf("customer snapshot missing: %+v", order)
	}
	if order.Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", order.Quantity)
	}
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("new order should be pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("order lines want 2 got %d", len(order.Lines))
	}
	if order.Lines[1].Flavor != "ube" {
		t.Fatalf("custom line flavor not kept: %+v", order.Lines[1])
	}
}

func TestCreateOrderValidation(t *testing.T) {
	_, svc, user := newOrderEnv(t)

	if _, err := svc.CreateOrder(CreateOrderInput{UserID: user.ID}); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("want ErrInvalidOrder got %v", err)
	}
	input := CreateOrderInput{
		UserID:         9999,
		Lines:          []OrderLineInput{{Title: "Sourdough Loaf", Quantity: 1}},
		PickupDateTime: time.Now(),
	}
	if _, err := svc.CreateOrder(input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown user got %v", err)
	}
}

func TestUpdateStatusKeepsCancelReasonOnlyWhenCanceled(t *testing.T) {
	_, svc, user := newOrderEnv(t)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		Lines:          []OrderLineInput{{Title: "Butter Croissant", Quantity: 1}},
		PickupDateTime: time.Now(),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	canceled, err := svc.UpdateStatus(order.ID, constants.OrderStatusCanceled, constants.CancelReasonFullyLoaded)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.CancelReason != constants.CancelReasonFullyLoaded {
		t.Fatalf("cancel reason not kept: %q", canceled.CancelReason)
	}

	baking, err := svc.UpdateStatus(order.ID, constants.OrderStatusBaking, "stale reason")
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if baking.Status != constants.OrderStatusBaking {
		t.Fatalf("status want Baking got %s", baking.Status)
	}
	if baking.CancelReason != "" {
		t.Fatalf("cancel reason should clear outside cancellation, got %q", baking.CancelReason)
	}

	if _, err := svc.UpdateStatus(order.ID, "  ", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus got %v", err)
	}
	if _, err := svc.UpdateStatus(9999, constants.OrderStatusBaking, ""); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
}

func TestListFiltered(t *testing.T) {
	_, svc, user := newOrderEnv(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOrder(CreateOrderInput{
			UserID:         user.ID,
			Lines:          []OrderLineInput{{Title: "Sourdough Loaf", Quantity: 1}},
			PickupDateTime: time.Now().Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("create order %d failed: %v", i, err)
		}
	}

	page, err := svc.ListFiltered(repository.OrderListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list filtered failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size want 2 got %d", len(page))
	}

	pending, err := svc.ListFiltered(repository.OrderListFilter{Page: 1, PageSize: 10, Status: constants.OrderStatusPending})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("pending orders want 3 got %d", len(pending))
	}

	none, err := svc.ListFiltered(repository.OrderListFilter{Page: 1, PageSize: 10, Status: constants.OrderStatusPickedUp})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("picked up orders want 0 got %d", len(none))
	}
}
