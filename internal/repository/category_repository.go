package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
)

// CategoryRepository wraps persistence for categories, scoped by owning
// user. Every read, update and delete filters by (id, user_id) jointly; a
// match on id alone is indistinguishable from not found.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint) ([]models.CategoryView, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.CategoryView, 0, len(categories))
	for i := range categories {
		count, err := r.CountExpenses(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.CategoryView{Category: categories[i], ExpenseCount: count})
	}
	return views, nil
}

func (r *CategoryRepository) GetByUserAndID(ctx context.Context, userID, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByUserAndName backs the advisory duplicate pre-check; the unique index
// remains the authoritative guard.
func (r *CategoryRepository) GetByUserAndName(ctx context.Context, userID uint, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountExpenses counts expenses referencing the category, regardless of
// date. Used for the deletion guard and for category views.
func (r *CategoryRepository) CountExpenses(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
