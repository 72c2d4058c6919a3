package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/repository"
)

// CreateExpenseInput carries validated expense creation fields. A nil Date
// defaults to the creation time.
type CreateExpenseInput struct {
	Amount      float64
	Description *string
	Date        *time.Time
	CategoryID  uint
	CurrencyID  uint
}

// UpdateExpenseInput applies only present fields; description distinguishes
// null (clear) from absent (keep).
type UpdateExpenseInput struct {
	Amount      *float64
	Description models.Optional[string]
	Date        *time.Time
	CategoryID  *uint
	CurrencyID  *uint
}

// ExpenseList is one page of a user's expenses.
type ExpenseList struct {
	Expenses   []models.ExpenseView `json:"expenses"`
	Pagination models.Pagination    `json:"pagination"`
}

// ExpenseService enforces the cross-reference policy: an expense may only
// point at a category and currency owned by the same user, category checked
// before currency.
type ExpenseService struct {
	expenses   *repository.ExpenseRepository
	categories *repository.CategoryRepository
	currencies *repository.CurrencyRepository
}

func NewExpenseService(
	expenses *repository.ExpenseRepository,
	categories *repository.CategoryRepository,
	currencies *repository.CurrencyRepository,
) *ExpenseService {
	return &ExpenseService{
		expenses:   expenses,
		categories: categories,
		currencies: currencies,
	}
}

func (s *ExpenseService) Create(ctx context.Context, userID uint, in CreateExpenseInput) (*models.ExpenseView, error) {
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkCurrency(ctx, userID, in.CurrencyID); err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	expense := &models.Expense{
		Amount:      in.Amount,
		Description: in.Description,
		Date:        date,
		CategoryID:  in.CategoryID,
		CurrencyID:  in.CurrencyID,
		UserID:      userID,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return s.loadView(ctx, userID, expense.ID)
}

func (s *ExpenseService) List(ctx context.Context, userID uint, filter repository.ExpenseFilter, page, limit int) (*ExpenseList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	expenses, total, err := s.expenses.ListByUser(ctx, userID, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	views := make([]models.ExpenseView, 0, len(expenses))
	for i := range expenses {
		views = append(views, *models.NewExpenseView(&expenses[i]))
	}
	return &ExpenseList{
		Expenses: views,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id uint) (*models.ExpenseView, error) {
	return s.loadView(ctx, userID, id)
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uint, in UpdateExpenseInput) (*models.ExpenseView, error) {
	expense, err := s.expenses.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Expense"}
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}

	if in.CategoryID != nil && *in.CategoryID != expense.CategoryID {
		if err := s.checkCategory(ctx, userID, *in.CategoryID); err != nil {
			return nil, err
		}
		expense.CategoryID = *in.CategoryID
	}
	if in.CurrencyID != nil && *in.CurrencyID != expense.CurrencyID {
		if err := s.checkCurrency(ctx, userID, *in.CurrencyID); err != nil {
			return nil, err
		}
		expense.CurrencyID = *in.CurrencyID
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.Description.Present {
		expense.Description = in.Description.Ptr()
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}

	// Clear preloaded relations so Save writes only the expense row.
	expense.Category = models.Category{}
	expense.Currency = models.Currency{}
	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return s.loadView(ctx, userID, expense.ID)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.expenses.GetByUserAndID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Expense"}
		}
		return fmt.Errorf("get expense: %w", err)
	}
	if err := s.expenses.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Expense"}
		}
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// Summarize reports the total and per-category breakdown of a user's
// expenses within an optional inclusive date window.
func (s *ExpenseService) Summarize(ctx context.Context, userID uint, startDate, endDate *time.Time) (*models.ExpenseSummary, error) {
	filter := repository.ExpenseFilter{StartDate: startDate, EndDate: endDate}
	summary, err := s.expenses.Summarize(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("summarize expenses: %w", err)
	}
	return summary, nil
}

func (s *ExpenseService) loadView(ctx context.Context, userID, id uint) (*models.ExpenseView, error) {
	expense, err := s.expenses.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Expense"}
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return models.NewExpenseView(expense), nil
}

func (s *ExpenseService) checkCategory(ctx context.Context, userID, categoryID uint) error {
	if _, err := s.categories.GetByUserAndID(ctx, userID, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Category"}
		}
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}

func (s *ExpenseService) checkCurrency(ctx context.Context, userID, currencyID uint) error {
	if _, err := s.currencies.GetByUserAndID(ctx, userID, currencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Currency"}
		}
		return fmt.Errorf("check currency: %w", err)
	}
	return nil
}
