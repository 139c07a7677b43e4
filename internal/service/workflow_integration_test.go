package service

import (
	"context"
	"strings"
	"testing"

	"survivalskills/internal/database"
	"survivalskills/internal/guide"
	"survivalskills/internal/models"
	"survivalskills/internal/repository"
	"survivalskills/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWorkflowDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

// Walks the whole signup flow against a real store: Jane subscribes from
// the UK, her guide goes out, the stored row reflects the delivery.
func TestSubscribeWorkflowEndToEnd(t *testing.T) {
	db := setupWorkflowDB(t)
	repo := repository.NewSubscriberRepository(db)
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := NewSubscriptionService(repo, notifier, guide.Content)
	ctx := context.Background()

	out, err := svc.Subscribe(ctx, &validation.SubscribeRequest{
		Email:  "  Jane.Doe@Example.com ",
		Name:   "Jane Doe",
		Region: "uk",
	})
	require.NoError(t, err)
	assert.True(t, out.Delivered)

	stored, err := repo.GetByEmail(ctx, "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", stored.Email)
	assert.Equal(t, models.RegionUK, stored.Region)
	assert.True(t, stored.PDFSent)
	assert.False(t, stored.SubscribedAt.IsZero())

	assert.True(t, strings.Contains(notifier.lastDoc, "United Kingdom"))

	// Second signup with a case variant of the same address is rejected.
	_, err = svc.Subscribe(ctx, &validation.SubscribeRequest{
		Email: "JANE.DOE@EXAMPLE.COM",
		Name:  "Jane Doe",
	})
	assert.True(t, models.IsCode(err, models.CodeDuplicateEmail))

	subs, err := svc.Subscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscribeWorkflowFailedDeliveryLeavesRowUnmarked(t *testing.T) {
	db := setupWorkflowDB(t)
	repo := repository.NewSubscriberRepository(db)
	notifier := &stubNotifier{guideOK: false, operatorOK: true}
	svc := NewSubscriptionService(repo, notifier, guide.Content)
	ctx := context.Background()

	out, err := svc.Subscribe(ctx, &validation.SubscribeRequest{
		Email: "sam@example.com",
		Name:  "Sam",
	})
	require.NoError(t, err)
	assert.False(t, out.Delivered)

	stored, err := repo.GetByEmail(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.False(t, stored.PDFSent)
}
