package repository

import (
	"errors"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderID(orderID string) (*models.Order, error)
	OrderIDExists(orderID string) (bool, error)
	List() ([]models.Order, error)
	ListFiltered(filter OrderListFilter) ([]models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListSortedByPickup() ([]models.Order, error)
	Update(order *models.Order) error
	UpdateFields(id uint, updates map[string]interface{}) error
	CountPaidByUser(userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order together with its lines.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID looks an order up by primary key. Returns nil when missing.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Lines").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderID looks an order up by its customer-facing number.
// Returns nil when missing.
func (r *GormOrderRepository) GetByOrderID(orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Lines").Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// OrderIDExists reports whether the customer-facing number is taken.
func (r *GormOrderRepository) OrderIDExists(orderID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns all orders, newest first.
func (r *GormOrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Lines").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListFiltered returns a page of orders, newest first.
func (r *GormOrderRepository) ListFiltered(filter OrderListFilter) ([]models.Order, error) {
	query := r.db.Model(&models.Order{}).Preload("Lines")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByUser returns the user's orders, newest first.
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Lines").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListSortedByPickup returns every order ordered by pickup time, the
// canonical sequence for renumbering at startup.
func (r *GormOrderRepository) ListSortedByPickup() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("pickup_date_time ASC, id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update saves an order.
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// UpdateFields applies a partial update to one order.
func (r *GormOrderRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// CountPaidByUser counts the user's paid orders for the loyalty program.
func (r *GormOrderRepository) CountPaidByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ? AND payment_status = ?", userID, constants.PaymentStatusPaid).
		Count(&count).Error
	return count, err
}
