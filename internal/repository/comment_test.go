package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ideaboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByPostInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	post := createTestPost(t, db, user.ID, "Idea1", time.Now())

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			Body:     fmt.Sprintf("comment %d", i),
			Username: "bob",
			PostID:   post.ID,
		}))
	}

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, comment := range comments {
		assert.Equal(t, fmt.Sprintf("comment %d", i+1), comment.Body)
	}
}

func TestCommentRepository_ListByPostScopedToPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	first := createTestPost(t, db, user.ID, "Idea1", time.Now())
	second := createTestPost(t, db, user.ID, "Idea2", time.Now())

	require.NoError(t, repo.Create(ctx, &models.Comment{
		Body: "on first", Username: "bob", PostID: first.ID,
	}))
	require.NoError(t, repo.Create(ctx, &models.Comment{
		Body: "on second", Username: "bob", PostID: second.ID,
	}))

	comments, err := repo.ListByPost(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on first", comments[0].Body)

	count, err := repo.CountByPost(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
