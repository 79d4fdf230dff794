package server

import (
	"ideaboard/internal/models"
	"ideaboard/internal/observability"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:id/comments.
// The display name is self-reported and is not required to match the
// authenticated account.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.Context(), service.AddCommentInput{
		PostID:   postID,
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	observability.CommentsAdded.Inc()

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(comments)
}
