// Package seed populates a development database with fake but plausible data.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"ideaboard/internal/models"
	"ideaboard/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikeProbability float64
}

// DefaultOptions is a small board: enough data to exercise pagination.
func DefaultOptions() Options {
	return Options{
		Users:           8,
		PostsPerUser:    3,
		CommentsPerPost: 2,
		LikeProbability: 0.4,
	}
}

// Run seeds users, ideas, comments, and likes. It is idempotent per username:
// existing users are reused rather than duplicated.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Every seeded account shares one hash; hashing per-user makes seeding
	// noticeably slow at default bcrypt cost.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("seed password hash: %w", err)
	}

	var users []*models.User
	for i := 0; i < opts.Users; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		if len(username) > 20 {
			username = username[:20]
		}

		existing, err := userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			users = append(users, existing)
			continue
		}

		user := &models.User{
			Username: username,
			Email:    gofakeit.Email(),
			Password: string(hashed),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				Title:          gofakeit.Sentence(4),
				Description:    gofakeit.Paragraph(1, 3, 12, " "),
				EffortRequired: gofakeit.Sentence(8),
				BusinessValue:  gofakeit.Sentence(8),
				UserID:         user.ID,
			}
			if err := postRepo.Create(ctx, post); err != nil {
				return err
			}

			for j := 0; j < opts.CommentsPerPost; j++ {
				comment := &models.Comment{
					Body:     truncate(gofakeit.Sentence(10), 200),
					Username: truncate(gofakeit.Username(), 20),
					PostID:   post.ID,
				}
				if err := commentRepo.Create(ctx, comment); err != nil {
					return err
				}
			}

			for _, liker := range users {
				if rand.Float64() < opts.LikeProbability {
					if err := postRepo.Like(ctx, liker.ID, post.ID); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
