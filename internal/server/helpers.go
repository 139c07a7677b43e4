package server

import (
	"survivalskills/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the application error taxonomy onto HTTP status codes
// and writes the standard error body.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case models.IsCode(err, models.CodeValidation), models.IsCode(err, models.CodeDuplicateEmail):
		status = fiber.StatusBadRequest
	case models.IsCode(err, models.CodeNotFound):
		status = fiber.StatusNotFound
	}
	return models.RespondWithError(c, status, err)
}

// parseLimit reads the limit query parameter, clamped to [0, max]. Zero
// means no limit.
func parseLimit(c *fiber.Ctx, max int) int {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	if limit > max {
		limit = max
	}
	return limit
}
