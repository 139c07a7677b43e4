package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"survivalskills/internal/config"
	"survivalskills/internal/database"
	"survivalskills/internal/mailer"
	"survivalskills/internal/models"
	"survivalskills/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSender struct {
	ok   bool
	sent []mailer.Message
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) bool {
	f.sent = append(f.sent, msg)
	return f.ok
}

func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		OperatorEmail: "owner@example.com",
		EmailFrom:     "noreply@budgetsurvivalskills.com",
		SiteURL:       "https://budgetsurvivalskills.com",
	}
}

// newTestApp builds a Server backed by an in-memory database and a fake
// mail sender, with routes mounted on a bare Fiber app.
func newTestApp(t *testing.T, sender *fakeSender) (*fiber.App, *Server) {
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

	srv := NewServerWithDeps(testConfig(), db, nil, sender)
	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

func seedPost(t *testing.T, srv *Server, post *models.Post) {
	t.Helper()
	if post.Content == "" {
		post.Content = "body"
	}
	require.NoError(t, srv.postRepo.Create(context.Background(), post))
}

// MockPostRepository drives storage-failure paths in handler tests.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Search(ctx context.Context, query string, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}
