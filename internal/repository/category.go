// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"survivalskills/internal/cache"
	"survivalskills/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	RecomputePostCount(ctx context.Context, categoryID uint) error
}

// categoryRepository implements CategoryRepository
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CategoriesTTL, func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	})
	if err != nil {
		return nil, models.NewStorageError("list categories", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, translateError("get category", "category", slug, err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("category with this name or slug already exists")
		}
		return models.NewStorageError("create category", err)
	}
	cache.InvalidateCategories(ctx)
	return nil
}

// RecomputePostCount resets the denormalized counter from the posts table.
// Only published posts count toward it.
func (r *categoryRepository) RecomputePostCount(ctx context.Context, categoryID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE categories
		 SET post_count = (SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id AND posts.published = ?)
		 WHERE id = ?`,
		true, categoryID,
	).Error
	if err != nil {
		return models.NewStorageError("recompute post count", err)
	}
	cache.InvalidateCategories(ctx)
	return nil
}
