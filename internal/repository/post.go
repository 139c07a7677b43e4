package repository

import (
	"fmt"
	"strings"

	"context"

	"survivalskills/internal/cache"
	"survivalskills/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows a post listing. Nil fields are not applied.
type PostFilter struct {
	Limit      int
	CategoryID *uint
	Featured   *bool
	Region     *models.Region
}

// cacheKey encodes the filter so each distinct listing caches under its
// own key.
func (f PostFilter) cacheKey() string {
	parts := []string{fmt.Sprintf("limit=%d", f.Limit)}
	if f.CategoryID != nil {
		parts = append(parts, fmt.Sprintf("category=%d", *f.CategoryID))
	}
	if f.Featured != nil {
		parts = append(parts, fmt.Sprintf("featured=%t", *f.Featured))
	}
	if f.Region != nil {
		parts = append(parts, "region="+string(*f.Region))
	}
	return cache.PostsListKey(strings.Join(parts, ":"))
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db         *gorm.DB
	categories CategoryRepository
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB, categories CategoryRepository) PostRepository {
	return &postRepository{db: db, categories: categories}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("post with this slug already exists")
		}
		return models.NewStorageError("create post", err)
	}
	cache.InvalidatePostsList(ctx)
	if post.CategoryID != nil {
		if err := r.categories.RecomputePostCount(ctx, *post.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, filter.cacheKey(), &posts, cache.PostsListTTL, func() error {
		q := r.db.WithContext(ctx).
			Preload("Category").
			Where("published = ?", true)
		if filter.CategoryID != nil {
			q = q.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.Featured != nil {
			q = q.Where("featured = ?", *filter.Featured)
		}
		if filter.Region != nil {
			q = q.Where("region = ?", string(*filter.Region))
		}
		if filter.Limit > 0 {
			q = q.Limit(filter.Limit)
		}
		return q.Order("published_at DESC").Find(&posts).Error
	})
	if err != nil {
		return nil, models.NewStorageError("list posts", err)
	}
	return posts, nil
}

// GetBySlug returns a published post and counts the read. The increment is
// a single UPDATE so concurrent reads never lose a view; zero rows affected
// means the post is missing or unpublished.
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE posts SET views = COALESCE(views, 0) + 1 WHERE slug = ? AND published = ?`,
		slug, true,
	)
	if res.Error != nil {
		return nil, models.NewStorageError("count post view", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("post", slug)
	}

	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, translateError("get post", "post", slug, err)
	}
	return &post, nil
}

func (r *postRepository) Search(ctx context.Context, query string, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	like := "%" + strings.ToLower(query) + "%"
	q := r.db.WithContext(ctx).
		Preload("Category").
		Where("published = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ?", like, like, like).
		Order("published_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, models.NewStorageError("search posts", err)
	}
	return posts, nil
}
