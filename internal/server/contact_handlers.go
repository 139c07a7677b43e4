package server

import (
	"survivalskills/internal/models"
	"survivalskills/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Contact handles POST /api/contact
func (s *Server) Contact(c *fiber.Ctx) error {
	var req validation.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	if !s.mail.RelayContact(c.Context(), req.Name, req.Email, req.Subject, req.Message) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send message. Please try again.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully!",
	})
}
