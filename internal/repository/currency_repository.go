package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
)

// CurrencyRepository wraps persistence for currencies, scoped by owning user.
type CurrencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

func (r *CurrencyRepository) Create(ctx context.Context, currency *models.Currency) error {
	return r.db.WithContext(ctx).Create(currency).Error
}

func (r *CurrencyRepository) ListByUser(ctx context.Context, userID uint) ([]models.Currency, error) {
	var currencies []models.Currency
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&currencies).Error
	if err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *CurrencyRepository) GetByUserAndID(ctx context.Context, userID, id uint) (*models.Currency, error) {
	var currency models.Currency
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&currency).Error
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *CurrencyRepository) GetByUserAndName(ctx context.Context, userID uint, name string) (*models.Currency, error) {
	var currency models.Currency
	err := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		First(&currency).Error
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *CurrencyRepository) Update(ctx context.Context, currency *models.Currency) error {
	return r.db.WithContext(ctx).Save(currency).Error
}

func (r *CurrencyRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Currency{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountExpenses counts expenses referencing the currency. Deletion is
// refused while this is non-zero.
func (r *CurrencyRepository) CountExpenses(ctx context.Context, currencyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("currency_id = ?", currencyID).
		Count(&count).Error
	return count, err
}
