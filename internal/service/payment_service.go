package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/payment/xendit"
	"github.com/sugarloaf/bakehouse/internal/queue"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

// PaymentService creates hosted payment links and applies webhook
// results to orders.
type PaymentService struct {
	cfg         *config.Config
	orderRepo   repository.OrderRepository
	orderSvc    *OrderService
	queueClient *queue.Client
}

// NewPaymentService creates the payment service.
func NewPaymentService(cfg *config.Config, orderRepo repository.OrderRepository, orderSvc *OrderService, queueClient *queue.Client) *PaymentService {
	return &PaymentService{
		cfg:         cfg,
		orderRepo:   orderRepo,
		orderSvc:    orderSvc,
		queueClient: queueClient,
	}
}

func (s *PaymentService) xenditConfig() *xendit.Config {
	return &xendit.Config{
		APIKey:             s.cfg.Payment.Xendit.APIKey,
		BaseURL:            s.cfg.Payment.Xendit.BaseURL,
		Currency:           s.cfg.Payment.Xendit.Currency,
		SuccessRedirectURL: s.cfg.Payment.Xendit.SuccessRedirectURL,
		FailureRedirectURL: s.cfg.Payment.Xendit.FailureRedirectURL,
		TimeoutMS:          s.cfg.Payment.Xendit.TimeoutMS,
	}
}

// CreateOrderWithPaymentLink places the order first, then requests the
// hosted invoice keyed to the new record. When the provider call fails
// the order stays Pending with no link and the failure surfaces to the
// caller; there is no retry.
func (s *PaymentService) CreateOrderWithPaymentLink(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	input.PaymentMethod = constants.PaymentMethodXendit
	order, err := s.orderSvc.CreateOrder(input)
	if err != nil {
		return nil, err
	}

	result, err := xendit.CreateInvoice(ctx, s.xenditConfig(), xendit.CreateInput{
		OrderRecordID: order.ID,
		Amount:        order.TotalAmount.Decimal,
		Description:   fmt.Sprintf("Bakehouse order %s", order.OrderID),
		PayerEmail:    order.UserEmail,
	})
	if err != nil {
		logger.Errorw("payment_link_create_failed",
			"order_id", order.OrderID,
			"error", err,
		)
		return order, fmt.Errorf("%w: %v", ErrPaymentLinkFailed, err)
	}

	updates := map[string]interface{}{
		"payment_link": result.InvoiceURL,
		"updated_at":   time.Now(),
	}
	if err := s.orderRepo.UpdateFields(order.ID, updates); err != nil {
		return order, err
	}
	order.PaymentLink = result.InvoiceURL

	logger.Infow("payment_link_created",
		"order_id", order.OrderID,
		"invoice_id", result.InvoiceID,
	)
	return order, nil
}

// HandleWebhook applies an invoice event. Unknown orders and replays
// are acknowledged without effect so the provider stops retrying.
func (s *PaymentService) HandleWebhook(body []byte) error {
	data, err := xendit.ParseCallback(body)
	if err != nil {
		return err
	}
	if !xendit.IsPaidStatus(data.Status) {
		logger.Infow("payment_webhook_ignored", "status", data.Status, "external_id", data.ExternalID)
		return nil
	}

	recordID, ok := xendit.ParseExternalID(data.ExternalID)
	if !ok {
		logger.Warnw("payment_webhook_foreign_external_id", "external_id", data.ExternalID)
		return nil
	}
	id, err := strconv.ParseUint(recordID, 10, 64)
	if err != nil {
		logger.Warnw("payment_webhook_bad_external_id", "external_id", data.ExternalID)
		return nil
	}

	order, err := s.orderRepo.GetByID(uint(id))
	if err != nil {
		return err
	}
	if order == nil {
		logger.Warnw("payment_webhook_order_missing", "external_id", data.ExternalID)
		return nil
	}
	if order.PaymentStatus == constants.PaymentStatusPaid {
		logger.Infow("payment_webhook_replay", "order_id", order.OrderID)
		return nil
	}

	updates := map[string]interface{}{
		"payment_status": constants.PaymentStatusPaid,
		"status":         constants.OrderStatusConfirmed,
		"updated_at":     time.Now(),
	}
	if err := s.orderRepo.UpdateFields(order.ID, updates); err != nil {
		return err
	}

	logger.Infow("payment_confirmed",
		"order_id", order.OrderID,
		"invoice_id", data.ID,
		"amount", data.Amount,
	)

	if err := s.queueClient.EnqueueLoyaltyRecount(queue.LoyaltyRecountPayload{UserID: order.UserID}); err != nil {
		logger.Warnw("loyalty_recount_enqueue_failed", "user_id", order.UserID, "error", err)
	}
	return nil
}
