package service

import (
	"time"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

// LoyaltyService reads and rebuilds customer loyalty records.
type LoyaltyService struct {
	loyaltyRepo     repository.LoyaltyRepository
	orderRepo       repository.OrderRepository
	userRepo        repository.UserRepository
	activeThreshold int
}

// NewLoyaltyService creates the loyalty service.
func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository, activeThreshold int) *LoyaltyService {
	if activeThreshold <= 0 {
		activeThreshold = 3
	}
	return &LoyaltyService{
		loyaltyRepo:     loyaltyRepo,
		orderRepo:       orderRepo,
		userRepo:        userRepo,
		activeThreshold: activeThreshold,
	}
}

// GetStatus returns the customer's loyalty record.
func (s *LoyaltyService) GetStatus(userID uint) (*models.LoyaltyRecord, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	record, err := s.loyaltyRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// Recount rebuilds one customer's record from their paid orders.
// Runs from the worker after each payment confirmation.
func (s *LoyaltyService) Recount(userID uint) error {
	if userID == 0 {
		return ErrNotFound
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	count, err := s.orderRepo.CountPaidByUser(userID)
	if err != nil {
		return err
	}

	status := constants.LoyaltyStatusInactive
	eligible := false
	if int(count) >= s.activeThreshold {
		status = constants.LoyaltyStatusActive
		eligible = true
	}

	now := time.Now()
	record := &models.LoyaltyRecord{
		UserID:               userID,
		UserName:             user.Name,
		OrderCount:           int(count),
		SpecialOfferEligible: eligible,
		Status:               status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.loyaltyRepo.Upsert(record); err != nil {
		return err
	}

	logger.Infow("loyalty_recounted",
		"user_id", userID,
		"order_count", count,
		"status", status,
	)
	return nil
}
