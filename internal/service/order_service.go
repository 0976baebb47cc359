package service

import (
	"strings"
	"time"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

// OrderService creates and manages bakery orders.
type OrderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	numberSvc *OrderNumberService
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, numberSvc *OrderNumberService) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		numberSvc: numberSvc,
	}
}

// OrderLineInput is one line of an order being placed.
type OrderLineInput struct {
	ItemType      string       `json:"item_type"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	CustomRequest string       `json:"custom_request"`
	Price         models.Money `json:"price"`
	Quantity      int          `json:"quantity"`
	Flavor        string       `json:"flavor"`
	Frosting      string       `json:"frosting"`
	Fillings      string       `json:"fillings"`
	Image         string       `json:"image"`
	ImagePath     string       `json:"image_path"`
}

// CreateOrderInput is an order being placed.
type CreateOrderInput struct {
	UserID         uint
	Lines          []OrderLineInput
	TotalAmount    models.Money
	Quantity       int
	PickupDateTime time.Time
	PaymentMethod  string
}

// CreateOrder snapshots the submitted lines under a freshly allocated
// order number. The customer's name and email are copied onto the
// order so later account edits do not rewrite history.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 || len(input.Lines) == 0 {
		return nil, ErrInvalidOrder
	}
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	orderID, err := s.numberSvc.NextOrderID()
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		for _, line := range input.Lines {
			quantity += line.Quantity
		}
	}

	now := time.Now()
	order := &models.Order{
		OrderID:        orderID,
		UserID:         user.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		TotalAmount:    input.TotalAmount,
		Quantity:       quantity,
		PickupDateTime: input.PickupDateTime,
		Status:         constants.OrderStatusPending,
		PaymentMethod:  input.PaymentMethod,
		PaymentStatus:  constants.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, line := range input.Lines {
		itemType := line.ItemType
		if itemType == "" {
			itemType = constants.ItemTypeRegular
		}
		lineQty := line.Quantity
		if lineQty <= 0 {
			lineQty = 1
		}
		order.Lines = append(order.Lines, models.OrderLine{
			ItemType:      itemType,
			Title:         line.Title,
			Description:   line.Description,
			CustomRequest: line.CustomRequest,
			UnitPrice:     line.Price,
			Quantity:      lineQty,
			Flavor:        line.Flavor,
			Frosting:      line.Frosting,
			Fillings:      line.Fillings,
			Image:         line.Image,
			ImagePath:     line.ImagePath,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_id", order.OrderID,
		"user_id", order.UserID,
		"total", order.TotalAmount.String(),
	)
	return order, nil
}

// List returns all orders.
func (s *OrderService) List() ([]models.Order, error) {
	return s.orderRepo.List()
}

// ListFiltered returns a page of orders for the staff dashboard.
func (s *OrderService) ListFiltered(filter repository.OrderListFilter) ([]models.Order, error) {
	return s.orderRepo.ListFiltered(filter)
}

// ListByUser returns one customer's orders.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// GetByID fetches one order.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus sets an order's status. Any status may follow any other;
// the bakery staff drive the sequence by hand. A cancel reason is kept
// only alongside a cancellation.
func (s *OrderService) UpdateStatus(id uint, status, cancelReason string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == constants.OrderStatusCanceled {
		updates["cancel_reason"] = cancelReason
	} else {
		updates["cancel_reason"] = ""
	}
	if err := s.orderRepo.UpdateFields(order.ID, updates); err != nil {
		return nil, err
	}

	logger.Infow("order_status_updated",
		"order_id", order.OrderID,
		"from", order.Status,
		"to", status,
	)
	return s.orderRepo.GetByID(order.ID)
}
