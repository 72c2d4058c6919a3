package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
)

// ExpenseFilter narrows an expense list or summary query. Nil fields are
// ignored; date bounds are inclusive.
type ExpenseFilter struct {
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpenseRepository wraps persistence for expenses, scoped by owning user.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// GetByUserAndID loads an expense with its category and currency relations
// for response shaping.
func (r *ExpenseRepository) GetByUserAndID(ctx context.Context, userID, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Currency").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListByUser returns one page of a user's expenses, newest date first,
// along with the total count of rows matching the filter.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uint, filter ExpenseFilter, page, limit int) ([]models.Expense, int64, error) {
	query := r.filtered(ctx, userID, filter)

	var total int64
	if err := query.Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []models.Expense
	err := query.
		Preload("Category").
		Preload("Currency").
		Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// categoryAggregate is the raw GROUP BY row for the summary report.
type categoryAggregate struct {
	CategoryID  uint
	TotalAmount float64
	Count       int64
}

// Summarize computes the total and the per-category breakdown of a user's
// expenses within the filter's date window. Categories with no matching
// expenses do not appear.
func (r *ExpenseRepository) Summarize(ctx context.Context, userID uint, filter ExpenseFilter) (*models.ExpenseSummary, error) {
	summary := &models.ExpenseSummary{ByCategory: []models.CategorySummary{}}

	totals := struct {
		TotalAmount float64
		TotalCount  int64
	}{}
	err := r.filtered(ctx, userID, filter).
		Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS total_count").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	summary.TotalAmount = totals.TotalAmount
	summary.TotalCount = totals.TotalCount

	var rows []categoryAggregate
	err = r.filtered(ctx, userID, filter).
		Model(&models.Expense{}).
		Select("category_id, SUM(amount) AS total_amount, COUNT(*) AS count").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return summary, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CategoryID)
	}
	var categories []models.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	refs := make(map[uint]models.CategoryRef, len(categories))
	for _, cat := range categories {
		refs[cat.ID] = models.CategoryRef{ID: cat.ID, Name: cat.Name, Color: cat.Color}
	}

	for _, row := range rows {
		summary.ByCategory = append(summary.ByCategory, models.CategorySummary{
			Category:    refs[row.CategoryID],
			TotalAmount: row.TotalAmount,
			Count:       row.Count,
		})
	}
	return summary, nil
}

func (r *ExpenseRepository) filtered(ctx context.Context, userID uint, filter ExpenseFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}
