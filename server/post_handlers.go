package server

import (
	"inkwell/models"

	"github.com/gofiber/fiber/v2"
)

// storeStatus maps a store error to the HTTP status it should surface as.
func storeStatus(err error) int {
	if models.IsNotFound(err) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Title   string `json:"title" form:"title"`
		Content string `json:"content" form:"content"`
		Author  string `json:"author" form:"author"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validate required fields
	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	post, err := s.posts.Create(ctx, req.Title, req.Content, req.Author)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	posts, err := s.posts.Load(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	post, err := s.posts.FetchByID(ctx, uint(id))
	if err != nil {
		return models.RespondWithError(c, storeStatus(err), err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	// Pointer fields distinguish "not supplied" from "set to empty";
	// unsupplied fields keep their prior values.
	var req struct {
		Title   *string `json:"title" form:"title"`
		Content *string `json:"content" form:"content"`
		Author  *string `json:"author" form:"author"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.posts.Update(ctx, uint(id), req.Title, req.Content, req.Author)
	if err != nil {
		return models.RespondWithError(c, storeStatus(err), err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	// Delete is a no-op for absent ids; the collection is re-saved either way.
	if err := s.posts.Delete(ctx, uint(id)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	post, err := s.posts.Like(ctx, uint(id))
	if err != nil {
		return models.RespondWithError(c, storeStatus(err), err)
	}

	return c.JSON(post)
}
