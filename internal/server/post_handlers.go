package server

import (
	"survivalskills/internal/models"
	"survivalskills/internal/repository"
	"survivalskills/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const maxListLimit = 100

// GetPosts handles GET /api/posts?limit=&categoryId=&featured=&region=
func (s *Server) GetPosts(c *fiber.Ctx) error {
	filter := repository.PostFilter{Limit: parseLimit(c, maxListLimit)}

	if categoryID := c.QueryInt("categoryId", 0); categoryID > 0 {
		id := uint(categoryID)
		filter.CategoryID = &id
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}
	if raw := c.Query("region"); raw != "" {
		region := models.NormalizeRegion(raw)
		filter.Region = &region
	}

	posts, err := s.postRepo.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// SearchPosts handles GET /api/posts/search?q=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return respondError(c, models.NewValidationError("Search query is required"))
	}

	posts, err := s.postRepo.Search(c.Context(), q, parseLimit(c, maxListLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:slug. Fetching a post counts a view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req validation.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	post := req.Model()
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}
