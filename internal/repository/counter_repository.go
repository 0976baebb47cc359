package repository

import (
	"errors"

	"github.com/sugarloaf/bakehouse/internal/models"

	"gorm.io/gorm"
)

// CounterRepository is the named-sequence data access interface.
type CounterRepository interface {
	Get(name string) (*models.Counter, error)
	IncrementAndGet(name string) (int64, error)
}

// GormCounterRepository is the GORM implementation.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates the counter repository.
func NewCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Get looks a counter up by name. Returns nil when missing.
func (r *GormCounterRepository) Get(name string) (*models.Counter, error) {
	var counter models.Counter
	if err := r.db.Where("name = ?", name).First(&counter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &counter, nil
}

// counterCreateRetries bounds the first-use create race: once any
// caller has inserted the row, the update path always wins.
const counterCreateRetries = 3

// IncrementAndGet bumps the named counter by one and returns the new
// value, creating the row at 1 on first use. The whole step runs in a
// transaction so concurrent callers each see a distinct value. Two
// callers racing on a missing row can both miss the update and try the
// insert; the loser gets a unique violation and retries the update.
func (r *GormCounterRepository) IncrementAndGet(name string) (int64, error) {
	var lastErr error
	for attempt := 0; attempt < counterCreateRetries; attempt++ {
		value, err := r.incrementAndGetOnce(name)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}

func (r *GormCounterRepository) incrementAndGetOnce(name string) (int64, error) {
	var value int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Counter{}).
			Where("name = ?", name).
			Update("value", gorm.Expr("value + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			counter := models.Counter{Name: name, Value: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			value = counter.Value
			return nil
		}
		var counter models.Counter
		if err := tx.Where("name = ?", name).First(&counter).Error; err != nil {
			return err
		}
		value = counter.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}
