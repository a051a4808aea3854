package repository

import (
	"counter_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type CounterRepository struct {
	DB *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{DB: db}
}

// Get returns the singleton counter row, creating it on first access.
// Losing the create race to a concurrent caller is not an error; the row
// exists either way.
func (r *CounterRepository) Get() (*model.ClickCounter, error) {
	var counter model.ClickCounter
	err := r.DB.First(&counter, model.CounterSingletonID).Error
	if err == nil {
		return &counter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	counter = model.ClickCounter{ID: model.CounterSingletonID}
	if createErr := r.DB.Create(&counter).Error; createErr != nil {
		if err := r.DB.First(&counter, model.CounterSingletonID).Error; err == nil {
			return &counter, nil
		}
		return nil, createErr
	}
	return &counter, nil
}

// Increment adds one to the counter with a single atomic UPDATE, so two
// concurrent increments can never read the same prior value.
func (r *CounterRepository) Increment() (*model.ClickCounter, error) {
	if _, err := r.Get(); err != nil {
		return nil, err
	}

	var counter model.ClickCounter
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ClickCounter{}).
			Where("id = ?", model.CounterSingletonID).
			Update("count", gorm.Expr("count + 1")).Error; err != nil {
			return err
		}
		return tx.First(&counter, model.CounterSingletonID).Error
	})
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

// Reset sets the counter back to zero.
func (r *CounterRepository) Reset() (*model.ClickCounter, error) {
	if _, err := r.Get(); err != nil {
		return nil, err
	}

	var counter model.ClickCounter
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ClickCounter{}).
			Where("id = ?", model.CounterSingletonID).
			Update("count", 0).Error; err != nil {
			return err
		}
		return tx.First(&counter, model.CounterSingletonID).Error
	})
	if err != nil {
		return nil, err
	}
	return &counter, nil
}
