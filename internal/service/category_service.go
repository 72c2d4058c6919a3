package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/repository"
)

// CreateCategoryInput carries validated category creation fields.
type CreateCategoryInput struct {
	Name        string
	Description *string
	Color       *string
}

// UpdateCategoryInput applies only present fields. Name is skipped when nil;
// description and color distinguish null (clear) from absent (keep).
type UpdateCategoryInput struct {
	Name        *string
	Description models.Optional[string]
	Color       models.Optional[string]
}

// CategoryService orchestrates ownership checks, uniqueness checks and
// persistence for categories.
type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, userID uint, in CreateCategoryInput) (*models.Category, error) {
	if err := s.checkNameFree(ctx, userID, in.Name); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		UserID:      userID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Category with this name already exists"}
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID uint) ([]models.CategoryView, error) {
	return s.categories.ListByUser(ctx, userID)
}

func (s *CategoryService) Get(ctx context.Context, userID, id uint) (*models.CategoryView, error) {
	category, err := s.categories.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Category"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	count, err := s.categories.CountExpenses(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("count expenses: %w", err)
	}
	return &models.CategoryView{Category: *category, ExpenseCount: count}, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id uint, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categories.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Category"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	if in.Name != nil && *in.Name != category.Name {
		if err := s.checkNameFree(ctx, userID, *in.Name); err != nil {
			return nil, err
		}
		category.Name = *in.Name
	}
	if in.Description.Present {
		category.Description = in.Description.Ptr()
	}
	if in.Color.Present {
		category.Color = in.Color.Ptr()
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Category with this name already exists"}
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete refuses while expenses still reference the category, mirroring the
// currency deletion guard.
func (s *CategoryService) Delete(ctx context.Context, userID, id uint) error {
	category, err := s.categories.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Category"}
		}
		return fmt.Errorf("get category: %w", err)
	}

	count, err := s.categories.CountExpenses(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("count expenses: %w", err)
	}
	if count > 0 {
		return &InUseError{Resource: "category", Count: count}
	}

	if err := s.categories.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Category"}
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *CategoryService) checkNameFree(ctx context.Context, userID uint, name string) error {
	_, err := s.categories.GetByUserAndName(ctx, userID, name)
	if err == nil {
		return &ConflictError{Message: "Category with this name already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup category name: %w", err)
	}
	return nil
}
