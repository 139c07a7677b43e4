package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"survivalskills/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	app, _ := newTestApp(t, &fakeSender{ok: true})

	t.Run("creates a category", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
			"name":        "Debt Payoff",
			"slug":        "debt-payoff",
			"description": "Strategies for paying down debt",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var cat models.Category
		require.NoError(t, json.Unmarshal(raw, &cat))
		assert.Equal(t, "Debt Payoff", cat.Name)
		assert.NotZero(t, cat.ID)
		assert.Zero(t, cat.PostCount)
	})

	t.Run("duplicate slug is 400", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
			"name": "Debt Payoff Again",
			"slug": "debt-payoff",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, models.CodeValidation, body.Code)
	})

	t.Run("missing name is 400", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
			"slug": "nameless",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetCategories(t *testing.T) {
	app, _ := newTestApp(t, &fakeSender{ok: true})

	for _, c := range []fiber.Map{
		{"name": "Side Hustles", "slug": "side-hustles"},
		{"name": "Emergency Fund", "slug": "emergency-fund"},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/categories", c)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []models.Category
	require.NoError(t, json.Unmarshal(raw, &cats))
	require.Len(t, cats, 2)
	assert.Equal(t, "Emergency Fund", cats[0].Name, "categories are name ordered")
}

func TestGetCategoryBySlug(t *testing.T) {
	app, _ := newTestApp(t, &fakeSender{ok: true})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
		"name": "Meal Planning", "slug": "meal-planning",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("found", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/api/categories/meal-planning", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cat models.Category
		require.NoError(t, json.Unmarshal(raw, &cat))
		assert.Equal(t, "Meal Planning", cat.Name)
	})

	t.Run("missing is 404", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/api/categories/no-such-category", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, models.CodeNotFound, body.Code)
	})
}
