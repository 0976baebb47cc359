package service

import (
	"fmt"
	"strconv"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"

	"gorm.io/gorm"
)

// nextOrderIDMaxRetries caps the collision loop. The counter alone
// makes collisions rare; the re-check absorbs drift after a resync.
const nextOrderIDMaxRetries = 10000

// OrderNumberService allocates the short sequential customer-facing
// order numbers backed by the counters table.
type OrderNumberService struct {
	db          *gorm.DB
	counterRepo repository.CounterRepository
	orderRepo   repository.OrderRepository
}

// NewOrderNumberService creates the allocator.
func NewOrderNumberService(db *gorm.DB, counterRepo repository.CounterRepository, orderRepo repository.OrderRepository) *OrderNumberService {
	return &OrderNumberService{
		db:          db,
		counterRepo: counterRepo,
		orderRepo:   orderRepo,
	}
}

// FormatOrderID renders a counter value as a zero-padded number.
// Values past the padding width simply widen.
func FormatOrderID(value int64) string {
	return fmt.Sprintf("%0*d", constants.OrderIDPaddingWidth, value)
}

// NextOrderID returns a free order number. Each call bumps the counter
// and re-checks the orders table, looping past values that are already
// taken.
func (s *OrderNumberService) NextOrderID() (string, error) {
	for i := 0; i < nextOrderIDMaxRetries; i++ {
		value, err := s.counterRepo.IncrementAndGet(constants.CounterOrderID)
		if err != nil {
			return "", err
		}
		candidate := FormatOrderID(value)
		taken, err := s.orderRepo.OrderIDExists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		logger.Debugw("order_id_collision", "candidate", candidate)
	}
	return "", ErrOrderIDExhausted
}

// ResyncOrderIDs renumbers all orders in pickup-time sequence. It runs
// at startup before the server accepts traffic. New numbers start past
// the highest numeric id already present, and numbers still in use are
// skipped mid-pass so the unique index never trips. The counter row is
// left alone; the collision loop in NextOrderID absorbs the drift.
func (s *OrderNumberService) ResyncOrderIDs() error {
	orders, err := s.orderRepo.ListSortedByPickup()
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	used := make(map[string]bool, len(orders))
	var maxID int64
	for _, order := range orders {
		used[order.OrderID] = true
		if n, err := strconv.ParseInt(order.OrderID, 10, 64); err == nil && n > maxID {
			maxID = n
		}
	}

	next := maxID + 1
	assignments := make(map[uint]string, len(orders))
	for _, order := range orders {
		candidate := FormatOrderID(next)
		next++
		for used[candidate] {
			candidate = FormatOrderID(next)
			next++
		}
		used[candidate] = true
		assignments[order.ID] = candidate
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for id, orderID := range assignments {
			if err := tx.Model(&models.Order{}).Where("id = ?", id).Update("order_id", orderID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Infow("order_ids_resynced", "count", len(assignments), "start", FormatOrderID(maxID+1))
	return nil
}
