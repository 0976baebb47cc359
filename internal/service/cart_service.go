package service

import (
	"strings"
	"time"

	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

// CartService manages cart lines. Regular lines merge by title so the
// same pastry never shows up twice; custom cakes always get their own
// line.
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// AddLineInput is a regular catalog line to add.
type AddLineInput struct {
	UserID      uint
	Title       string
	Description string
	Price       models.Money
	Quantity    int
	Category    string
	Image       string
}

// AddCustomLineInput is a made-to-order cake line to add.
type AddCustomLineInput struct {
	UserID        uint
	Title         string
	CustomRequest string
	Price         models.Money
	Quantity      int
	Flavor        string
	Frosting      string
	Fillings      string
	ImagePath     string
	PickupTime    *time.Time
}

// AddLine adds a regular line, merging into an existing line with the
// same title by bumping its quantity.
func (s *CartService) AddLine(input AddLineInput) (*models.CartLine, error) {
	title := strings.TrimSpace(input.Title)
	if input.UserID == 0 || title == "" {
		return nil, ErrInvalidCartLine
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	existing, err := s.cartRepo.GetRegularByUserAndTitle(input.UserID, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now()
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := time.Now()
	line := &models.CartLine{
		UserID:      input.UserID,
		ItemType:    constants.ItemTypeRegular,
		Title:       title,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    quantity,
		Category:    input.Category,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.cartRepo.Create(line); err != nil {
		return nil, err
	}
	return line, nil
}

// AddCustomLine adds a custom cake line. Custom lines never merge.
func (s *CartService) AddCustomLine(input AddCustomLineInput) (*models.CartLine, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidCartLine
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Custom Cake"
	}

	now := time.Now()
	line := &models.CartLine{
		UserID:        input.UserID,
		ItemType:      constants.ItemTypeCustom,
		Title:         title,
		CustomRequest: input.CustomRequest,
		Price:         input.Price,
		Quantity:      quantity,
		Flavor:        input.Flavor,
		Frosting:      input.Frosting,
		Fillings:      input.Fillings,
		ImagePath:     input.ImagePath,
		PickupTime:    input.PickupTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.cartRepo.Create(line); err != nil {
		return nil, err
	}
	return line, nil
}

// ListByUser returns the user's cart.
func (s *CartService) ListByUser(userID uint) ([]models.CartLine, error) {
	return s.cartRepo.ListByUser(userID)
}

// IncreaseQuantity bumps a line's quantity by one.
func (s *CartService) IncreaseQuantity(lineID uint) (*models.CartLine, error) {
	line, err := s.cartRepo.GetByID(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, ErrCartLineNotFound
	}
	line.Quantity++
	line.UpdatedAt = time.Now()
	if err := s.cartRepo.Update(line); err != nil {
		return nil, err
	}
	return line, nil
}

// DecreaseQuantity lowers a line's quantity by one, deleting the line
// when it reaches zero. The returned line is nil when deleted.
func (s *CartService) DecreaseQuantity(lineID uint) (*models.CartLine, error) {
	line, err := s.cartRepo.GetByID(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, ErrCartLineNotFound
	}
	line.Quantity--
	if line.Quantity <= 0 {
		if err := s.cartRepo.DeleteByID(line.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	line.UpdatedAt = time.Now()
	if err := s.cartRepo.Update(line); err != nil {
		return nil, err
	}
	return line, nil
}

// DeleteLine removes one line.
func (s *CartService) DeleteLine(lineID uint) error {
	line, err := s.cartRepo.GetByID(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return ErrCartLineNotFound
	}
	return s.cartRepo.DeleteByID(line.ID)
}

// Clear empties the user's cart. Always succeeds, even when the cart
// was already empty.
func (s *CartService) Clear(userID uint) error {
	_, err := s.cartRepo.ClearByUser(userID)
	return err
}

// ClearStrict empties the user's cart but reports ErrCartEmpty when
// there was nothing to remove.
func (s *CartService) ClearStrict(userID uint) error {
	affected, err := s.cartRepo.ClearByUser(userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartEmpty
	}
	return nil
}
