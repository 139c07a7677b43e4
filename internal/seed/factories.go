package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"survivalskills/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var demoRegions = []models.Region{
	models.RegionUS, models.RegionUK, models.RegionAU, models.RegionCA,
}

var articleTopics = []string{
	"Grocery Savings", "Utility Bills", "Thrift Flipping", "Cashback Apps",
	"Meal Prep", "No-Spend Challenge", "Pantry Staples", "Car Maintenance",
	"Home Repairs", "Holiday Budgeting", "Freezer Cooking", "Yard Sales",
}

// Factory builds demo entities and persists them to the database. It is a
// thin helper used by the seeder and by load tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for demo data
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// BuildPost constructs an unpersisted demo article with a realistic
// publish-date spread over the last 90 days.
func (f *Factory) BuildPost(categories map[string]*models.Category, n int) *models.Post {
	topic := articleTopics[f.r.Intn(len(articleTopics))]
	title := fmt.Sprintf("%s: %s", topic, gofakeit.Sentence(4))
	title = strings.TrimSuffix(title, ".")

	var category *models.Category
	if len(categories) > 0 {
		keys := make([]string, 0, len(categories))
		for slug := range categories {
			keys = append(keys, slug)
		}
		category = categories[keys[f.r.Intn(len(keys))]]
	}

	post := &models.Post{
		Title:       title,
		Slug:        fmt.Sprintf("%s-%d-%s", slugify(topic), n, strings.ToLower(gofakeit.LetterN(6))),
		Excerpt:     gofakeit.Sentence(12),
		Content:     gofakeit.Paragraph(3, 5, 12, "\n\n"),
		Keywords:    strings.ToLower(topic) + ", budget, frugal living",
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		ImageAlt:    gofakeit.Sentence(5),
		ReadTime:    3 + f.r.Intn(10),
		Views:       f.r.Intn(3000),
		Featured:    f.r.Intn(10) == 0,
		Published:   f.r.Intn(10) != 0,
		PublishedAt: time.Now().UTC().Add(-time.Duration(f.r.Intn(90*24)) * time.Hour),
		Region:      demoRegions[f.r.Intn(len(demoRegions))],
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	return post
}

// CreatePosts persists count generated demo articles.
func (f *Factory) CreatePosts(categories map[string]*models.Category, count int) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		post := f.BuildPost(categories, i+1)
		if err := f.db.Create(post).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// CreateSubscribers persists count generated demo subscribers.
func (f *Factory) CreateSubscribers(count int) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		sub := &models.Subscriber{
			Email:        models.NormalizeEmail(gofakeit.Email()),
			Name:         gofakeit.Name(),
			Region:       demoRegions[f.r.Intn(len(demoRegions))],
			SubscribedAt: time.Now().UTC().Add(-time.Duration(f.r.Intn(60*24)) * time.Hour),
			PDFSent:      f.r.Intn(5) != 0,
		}
		if err := f.db.Create(sub).Error; err != nil {
			// generated addresses can collide, skip and keep going
			continue
		}
		created++
	}
	return created, nil
}

func slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
