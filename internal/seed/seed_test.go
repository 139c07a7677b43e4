package seed

import (
	"testing"

	"survivalskills/internal/database"
	"survivalskills/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRunSeedsBaseline(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(db, Options{}))

	var categories []models.Category
	require.NoError(t, db.Order("name ASC").Find(&categories).Error)
	require.Len(t, categories, 6)
	assert.Equal(t, "Debt Payoff", categories[0].Name)

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	assert.Len(t, posts, 13)

	var flagship models.Post
	require.NoError(t, db.Where("slug = ?", "how-to-build-1000-emergency-fund-in-30-days").First(&flagship).Error)
	assert.True(t, flagship.Featured)
	assert.Equal(t, models.RegionUS, flagship.Region)
	assert.Equal(t, 2847, flagship.Views)

	// post_count reflects published posts per category
	var emergency models.Category
	require.NoError(t, db.Where("slug = ?", "emergency-fund").First(&emergency).Error)
	assert.Equal(t, 5, emergency.PostCount)
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(db, Options{}))
	require.NoError(t, Run(db, Options{}))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 13, count)
}

func TestFactoryGeneratesDemoData(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(db, Options{NumPosts: 10, NumSubscribers: 5}))

	var posts int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 23, posts)

	var subs int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&subs).Error)
	assert.LessOrEqual(t, subs, int64(5))
	assert.Positive(t, subs)
}
