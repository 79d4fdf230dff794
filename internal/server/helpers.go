package server

import (
	"errors"
	"log/slog"
	"strings"

	"ideaboard/internal/middleware"
	"ideaboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage reads the 1-indexed page query parameter. The raw value is passed
// through so the service layer owns the non-positive-page validation error.
func parsePage(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// optionalUserID resolves the current user from a Bearer token when present.
// Anonymous requests yield zero.
func (s *Server) optionalUserID(c *fiber.Ctx) uint {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0
	}
	userID, err := middleware.ParseUserID(parts[1], s.config.JWTSecret)
	if err != nil {
		return 0
	}
	return userID
}

// respondDomainError maps a domain error to its HTTP status and writes the
// standardized error body.
func respondDomainError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// logResetToken records an issued reset token for operator-assisted resets.
// Not emitted in production.
func (s *Server) logResetToken(c *fiber.Ctx, userID uint, token string) {
	if s.config.IsProduction() {
		return
	}
	middleware.Logger.InfoContext(c.UserContext(), "password reset token issued",
		slog.Any("user_id", userID),
		slog.String("token", token),
	)
}
