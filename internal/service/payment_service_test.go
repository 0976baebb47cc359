package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"

	"gorm.io/gorm"
)

func newPaymentEnv(t *testing.T, xenditBaseURL string) (*gorm.DB, *PaymentService, *models.User) {
	t.Helper()
	db := setupServiceDB(t)
	user := &models.User{Name: "Dina", Email: "dina@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Payment.Xendit.APIKey = "xnd_test_key"
	cfg.Payment.Xendit.BaseURL = xenditBaseURL
	cfg.Payment.Xendit.Currency = "PHP"

	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	numberSvc := NewOrderNumberService(db, repository.NewCounterRepository(db), orderRepo)
	orderSvc := NewOrderService(orderRepo, userRepo, numberSvc)
	return db, NewPaymentService(cfg, orderRepo, orderSvc, nil), user
}

func placeOrder(t *testing.T, svc *PaymentService, db *gorm.DB, userID uint) *models.Order {
	t.Helper()
	order, err := svc.orderSvc.CreateOrder(CreateOrderInput{
		UserID:         userID,
		Lines:          []OrderLineInput{{Title: "Classic Chocolate Cake", Price: models.NewMoneyFromFloat(350), Quantity: 1}},
		TotalAmount:    models.NewMoneyFromFloat(350),
		PickupDateTime: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestCreateOrderWithPaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/invoices" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		user, _, ok := r.BasicAuth()
		if !ok || user != "xnd_test_key" {
			t.Fatalf("api key should ride as basic auth username")
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request failed: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"inv-1","external_id":"%s","status":"PENDING","invoice_url":"https://checkout.test/inv-1"}`, body["external_id"])
	}))
	defer server.Close()

	db, svc, user := newPaymentEnv(t, server.URL)

	order, err := svc.CreateOrderWithPaymentLink(context.Background(), CreateOrderInput{
		UserID:         user.ID,
		Lines:          []OrderLineInput{{Title: "Classic Chocolate Cake", Price: models.NewMoneyFromFloat(350), Quantity: 1}},
		TotalAmount:    models.NewMoneyFromFloat(350),
		PickupDateTime: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create with payment link failed: %v", err)
	}
	if order.PaymentLink != "https://checkout.test/inv-1" {
		t.Fatalf("payment link not stored on return value: %q", order.PaymentLink)
	}
	if order.PaymentMethod != constants.PaymentMethodXendit {
		t.Fatalf("payment method want xendit got %s", order.PaymentMethod)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.PaymentLink != order.PaymentLink {
		t.Fatalf("payment link not persisted: %q", reloaded.PaymentLink)
	}
}

func TestCreateOrderWithPaymentLinkProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code":"SERVER_ERROR"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	db, svc, user := newPaymentEnv(t, server.URL)

	order, err := svc.CreateOrderWithPaymentLink(context.Background(), CreateOrderInput{
		UserID:         user.ID,
		Lines:          []OrderLineInput{{Title: "Sourdough Loaf", Price: models.NewMoneyFromFloat(180), Quantity: 1}},
		TotalAmount:    models.NewMoneyFromFloat(180),
		PickupDateTime: time.Now().Add(24 * time.Hour),
	})
	if !errors.Is(err, ErrPaymentLinkFailed) {
		t.Fatalf("want ErrPaymentLinkFailed got %v", err)
	}
	if order == nil {
		t.Fatalf("order should still be placed when the provider fails")
	}

	// The order stays pending with no link.
	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.PaymentLink != "" || reloaded.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("order should stay pending without a link: %+v", reloaded)
	}
}

func webhookBody(t *testing.T, externalID, status string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"id":          "inv-1",
		"external_id": externalID,
		"status":      status,
		"amount":      350,
	})
	if err != nil {
		t.Fatalf("marshal webhook body failed: %v", err)
	}
	return body
}

func TestHandleWebhookConfirmsOrderOnce(t *testing.T) {
	db, svc, user := newPaymentEnv(t, "")
	order := placeOrder(t, svc, db, user.ID)

	body := webhookBody(t, fmt.Sprintf("order-%d", order.ID), "PAID")
	if err := svc.HandleWebhook(body); err != nil {
		t.Fatalf("webhook failed: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("payment status want Paid got %s", reloaded.PaymentStatus)
	}
	if reloaded.Status != constants.OrderStatusConfirmed {
		t.Fatalf("order status want Confirmed got %s", reloaded.Status)
	}

	// A replayed event acknowledges without another transition.
	if err := svc.HandleWebhook(body); err != nil {
		t.Fatalf("webhook replay failed: %v", err)
	}
}

func TestHandleWebhookIgnoresForeignAndUnpaid(t *testing.T) {
	db, svc, user := newPaymentEnv(t, "")
	order := placeOrder(t, svc, db, user.ID)

	if err := svc.HandleWebhook(webhookBody(t, "subscription-7", "PAID")); err != nil {
		t.Fatalf("foreign external id should be acknowledged: %v", err)
	}
	if err := svc.HandleWebhook(webhookBody(t, fmt.Sprintf("order-%d", order.ID), "EXPIRED")); err != nil {
		t.Fatalf("unpaid status should be acknowledged: %v", err)
	}
	if err := svc.HandleWebhook(webhookBody(t, "order-424242", "PAID")); err != nil {
		t.Fatalf("unknown order should be acknowledged: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("order should stay pending, got %s", reloaded.PaymentStatus)
	}

	if err := svc.HandleWebhook([]byte("not-json")); err == nil {
		t.Fatalf("malformed payload should error")
	}
}
