package server

import (
	"ideaboard/internal/models"
	"ideaboard/internal/observability"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	EffortRequired string `json:"effort_required"`
	BusinessValue  string `json:"business_value"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		EffortRequired: req.EffortRequired,
		BusinessValue:  req.BusinessValue,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	observability.IdeasCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts?page=N
func (s *Server) GetPosts(c *fiber.Ctx) error {
	userID := s.optionalUserID(c)

	posts, err := s.postService.ListPosts(c.Context(), parsePage(c), userID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := s.optionalUserID(c)

	post, err := s.postService.GetPost(c.Context(), id, userID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(post)
}

// GetUserPosts handles GET /api/users/:username/posts?page=N
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	userID := s.optionalUserID(c)

	posts, err := s.postService.ListPostsByAuthor(c.Context(), username, parsePage(c), userID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(posts)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:         userID,
		PostID:         postID,
		Title:          req.Title,
		Description:    req.Description,
		EffortRequired: req.EffortRequired,
		BusinessValue:  req.BusinessValue,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondDomainError(c, err)
	}
	observability.IdeasDeleted.Inc()

	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.LikePost(c.Context(), userID, postID); err != nil {
		return respondDomainError(c, err)
	}
	observability.LikeToggles.WithLabelValues("like").Inc()

	count, err := s.postService.LikeCount(c.Context(), postID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{"liked": true, "likes_count": count})
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.UnlikePost(c.Context(), userID, postID); err != nil {
		return respondDomainError(c, err)
	}
	observability.LikeToggles.WithLabelValues("unlike").Inc()

	count, err := s.postService.LikeCount(c.Context(), postID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{"liked": false, "likes_count": count})
}

// HasLiked handles GET /api/posts/:id/liked
func (s *Server) HasLiked(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.postService.HasLiked(c.Context(), userID, postID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{"liked": liked})
}
