// Package seed populates the database with the site's baseline editorial
// content plus optional generated demo data. Intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"time"

	"survivalskills/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts       int
	NumSubscribers int
	ShouldClean    bool
}

// Run seeds the baseline categories and articles, then layers generated
// demo content on top according to opts.
func Run(db *gorm.DB, opts Options) error {
	log.Println("Starting database seeding...")

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	categories, err := createCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("%d categories available", len(categories))

	baseline, err := createBaselinePosts(db, categories)
	if err != nil {
		return fmt.Errorf("failed to create baseline posts: %w", err)
	}
	log.Printf("%d baseline articles created", baseline)

	factory := NewFactory(db)
	if opts.NumPosts > 0 {
		created, err := factory.CreatePosts(categories, opts.NumPosts)
		if err != nil {
			return fmt.Errorf("failed to create generated posts: %w", err)
		}
		log.Printf("%d generated articles created", created)
	}
	if opts.NumSubscribers > 0 {
		created, err := factory.CreateSubscribers(opts.NumSubscribers)
		if err != nil {
			return fmt.Errorf("failed to create subscribers: %w", err)
		}
		log.Printf("%d subscribers created", created)
	}

	if err := recountCategories(db); err != nil {
		return fmt.Errorf("failed to recount categories: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE posts, subscribers, categories RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func recountCategories(db *gorm.DB) error {
	return db.Exec(`
		UPDATE categories
		SET post_count = (
			SELECT COUNT(*) FROM posts
			WHERE posts.category_id = categories.id AND posts.published = ?
		)`, true).Error
}

func createCategories(db *gorm.DB) (map[string]*models.Category, error) {
	data := []models.Category{
		{Name: "Emergency Fund", Slug: "emergency-fund", Description: "Building and managing emergency savings"},
		{Name: "Frugal Living", Slug: "frugal-living", Description: "Money-saving tips and strategies"},
		{Name: "Meal Planning", Slug: "meal-planning", Description: "Budget-friendly meal planning and cooking"},
		{Name: "Preparedness", Slug: "preparedness", Description: "Emergency preparedness and survival skills"},
		{Name: "Side Hustles", Slug: "side-hustles", Description: "Extra income opportunities"},
		{Name: "Debt Payoff", Slug: "debt-payoff", Description: "Strategies for paying off debt"},
	}

	categories := make(map[string]*models.Category, len(data))
	for i := range data {
		cat := &data[i]
		if err := db.Where(models.Category{Slug: cat.Slug}).FirstOrCreate(cat).Error; err != nil {
			return nil, err
		}
		categories[cat.Slug] = cat
	}
	return categories, nil
}

func createBaselinePosts(db *gorm.DB, categories map[string]*models.Category) (int, error) {
	created := 0
	for i, post := range baselinePosts(categories) {
		var count int64
		if err := db.Model(&models.Post{}).Where("slug = ?", post.Slug).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		// Spread publish dates so ordering is stable and feed-friendly.
		post.PublishedAt = time.Now().UTC().AddDate(0, 0, -7*(i+1))
		if err := db.Create(post).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
