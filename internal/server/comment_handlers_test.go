package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "alice")
	postID := createIdea(t, app, token, "Commentable")

	// The display name is self-reported and need not match the account.
	resp := doJSON(t, app, http.MethodPost, postPath(postID, "/comments"), token, fiber.Map{
		"username": "definitely-not-alice",
		"body":     "great idea",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Body     string `json:"body"`
		PostID   uint   `json:"post_id"`
	}
	decodeJSON(t, resp, &body)
	assert.NotZero(t, body.ID)
	assert.Equal(t, "definitely-not-alice", body.Username)
	assert.Equal(t, "great idea", body.Body)
	assert.Equal(t, postID, body.PostID)
}

func TestCreateComment_Validation(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "alice")
	postID := createIdea(t, app, token, "Commentable")

	tests := []struct {
		name     string
		username string
		body     string
	}{
		{"empty body", "bob", ""},
		{"body too long", "bob", strings.Repeat("x", 201)},
		{"empty name", "", "fine"},
		{"name too long", strings.Repeat("b", 21), "fine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, postPath(postID, "/comments"), token, fiber.Map{
				"username": tt.username,
				"body":     tt.body,
			})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateComment_MissingPost(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/posts/999/comments", token, fiber.Map{
		"username": "bob", "body": "into the void",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetComments_InsertionOrder(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "alice")
	postID := createIdea(t, app, token, "Commentable")

	for _, body := range []string{"first", "second", "third"} {
		resp := doJSON(t, app, http.MethodPost, postPath(postID, "/comments"), token, fiber.Map{
			"username": "bob", "body": body,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, postPath(postID, "/comments"), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []struct {
		Body string `json:"body"`
	}
	decodeJSON(t, resp, &comments)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "second", comments[1].Body)
	assert.Equal(t, "third", comments[2].Body)
}

func TestGetComments_EmptyList(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "alice")
	postID := createIdea(t, app, token, "Lonely")

	resp := doJSON(t, app, http.MethodGet, postPath(postID, "/comments"), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []struct{}
	decodeJSON(t, resp, &comments)
	assert.Empty(t, comments)
}
