package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/repository"
)

// CreateCurrencyInput carries validated currency creation fields.
type CreateCurrencyInput struct {
	Name            string
	USDExchangeRate float64
}

// UpdateCurrencyInput applies only non-nil fields.
type UpdateCurrencyInput struct {
	Name            *string
	USDExchangeRate *float64
}

// CurrencyService orchestrates ownership checks, uniqueness checks and the
// in-use deletion guard for currencies.
type CurrencyService struct {
	currencies *repository.CurrencyRepository
}

func NewCurrencyService(currencies *repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencies: currencies}
}

func (s *CurrencyService) Create(ctx context.Context, userID uint, in CreateCurrencyInput) (*models.Currency, error) {
	if err := s.checkNameFree(ctx, userID, in.Name); err != nil {
		return nil, err
	}

	currency := &models.Currency{
		Name:            in.Name,
		USDExchangeRate: in.USDExchangeRate,
		UserID:          userID,
	}
	if err := s.currencies.Create(ctx, currency); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Currency with this name already exists"}
		}
		return nil, fmt.Errorf("create currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) List(ctx context.Context, userID uint) ([]models.Currency, error) {
	return s.currencies.ListByUser(ctx, userID)
}

func (s *CurrencyService) Get(ctx context.Context, userID, id uint) (*models.Currency, error) {
	currency, err := s.currencies.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Currency"}
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) Update(ctx context.Context, userID, id uint, in UpdateCurrencyInput) (*models.Currency, error) {
	currency, err := s.currencies.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Currency"}
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}

	if in.Name != nil && *in.Name != currency.Name {
		if err := s.checkNameFree(ctx, userID, *in.Name); err != nil {
			return nil, err
		}
		currency.Name = *in.Name
	}
	if in.USDExchangeRate != nil {
		currency.USDExchangeRate = *in.USDExchangeRate
	}

	if err := s.currencies.Update(ctx, currency); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Currency with this name already exists"}
		}
		return nil, fmt.Errorf("update currency: %w", err)
	}
	return currency, nil
}

// Delete counts dependent expenses first; a non-zero count blocks the
// deletion and is reported to the caller.
func (s *CurrencyService) Delete(ctx context.Context, userID, id uint) error {
	currency, err := s.currencies.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Currency"}
		}
		return fmt.Errorf("get currency: %w", err)
	}

	count, err := s.currencies.CountExpenses(ctx, currency.ID)
	if err != nil {
		return fmt.Errorf("count expenses: %w", err)
	}
	if count > 0 {
		return &InUseError{Resource: "currency", Count: count}
	}

	if err := s.currencies.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Currency"}
		}
		return fmt.Errorf("delete currency: %w", err)
	}
	return nil
}

func (s *CurrencyService) checkNameFree(ctx context.Context, userID uint, name string) error {
	_, err := s.currencies.GetByUserAndName(ctx, userID, name)
	if err == nil {
		return &ConflictError{Message: "Currency with this name already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup currency name: %w", err)
	}
	return nil
}
