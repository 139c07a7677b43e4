package server

import (
	"survivalskills/internal/models"
	"survivalskills/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Subscribe handles POST /api/subscribe. A persisted subscriber whose guide
// email failed still gets a 200; success reports whether the guide went out.
func (s *Server) Subscribe(c *fiber.Ctx) error {
	var req validation.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	out, err := s.subscriptions.Subscribe(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Successfully subscribed! Check your email for the PDF guide.",
		"success": out.Delivered,
	})
}

// GetSubscribers handles GET /api/subscribers
func (s *Server) GetSubscribers(c *fiber.Ctx) error {
	subs, err := s.subscriptions.Subscribers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}
