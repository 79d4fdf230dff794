package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"ideaboard/internal/config"
	"ideaboard/internal/database"
	"ideaboard/internal/middleware"
	"ideaboard/internal/repository"
	"ideaboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires a server against in-memory sqlite with the real route
// table. Redis and the metrics middleware are left out; rate limiting is off
// outside production anyway.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:            "test-secret-not-for-production",
		Port:                 "8470",
		Env:                  "test",
		ResetTokenTTLSeconds: 1800,
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
	s.authService = service.NewAuthService(
		userRepo, cfg.JWTSecret, time.Duration(cfg.ResetTokenTTLSeconds)*time.Second)
	s.postService = service.NewPostService(postRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)

	middleware.InitMiddleware(cfg)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signupUser registers a fresh account and returns its session token and id.
func signupUser(t *testing.T, app *fiber.App, username string) (token string, userID uint) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token, body.User.ID
}

// createIdea posts a minimal valid idea and returns its id.
func createIdea(t *testing.T, app *fiber.App, token, title string) uint {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/posts/", token, fiber.Map{
		"title":           title,
		"description":     "a description",
		"effort_required": "two weeks",
		"business_value":  "saves money",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &body)
	require.NotZero(t, body.ID)
	return body.ID
}

func postPath(id uint, suffix string) string {
	return fmt.Sprintf("/api/posts/%d%s", id, suffix)
}
