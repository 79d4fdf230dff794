// Package service implements the domain logic layer coordinating the
// repositories. Every operation takes the acting identity explicitly; there is
// no ambient current-user state.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"ideaboard/internal/models"
	"ideaboard/internal/repository"
	"ideaboard/internal/validation"
)

// PostsPerPage is the fixed page size for idea listings.
const PostsPerPage = 5

// PostService owns the idea lifecycle and like/unlike toggling.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID         uint
	Title          string
	Description    string
	EffortRequired string
	BusinessValue  string
}

type UpdatePostInput struct {
	UserID         uint
	PostID         uint
	Title          string
	Description    string
	EffortRequired string
	BusinessValue  string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// validatePostFields trims the four text fields in place and rejects empty
// ones. All four are required for an idea to be reviewable.
func validatePostFields(title, description, effort, value *string) error {
	*title = strings.TrimSpace(*title)
	*description = strings.TrimSpace(*description)
	*effort = strings.TrimSpace(*effort)
	*value = strings.TrimSpace(*value)

	switch "" {
	case *title:
		return models.NewValidationError("Title is required")
	case *description:
		return models.NewValidationError("Description is required")
	case *effort:
		return models.NewValidationError("Effort required is required")
	case *value:
		return models.NewValidationError("Business value is required")
	}
	if utf8.RuneCountInString(*title) > validation.MaxTitleLen {
		return models.NewValidationError("Title too long (max 100 characters)")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(&in.Title, &in.Description, &in.EffortRequired, &in.BusinessValue); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:          in.Title,
		Description:    in.Description,
		EffortRequired: in.EffortRequired,
		BusinessValue:  in.BusinessValue,
		UserID:         in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// UpdatePost overwrites the four mutable fields. Only the author may edit;
// the creation timestamp is never touched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own ideas")
	}

	if err := validatePostFields(&in.Title, &in.Description, &in.EffortRequired, &in.BusinessValue); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Description = in.Description
	post.EffortRequired = in.EffortRequired
	post.BusinessValue = in.BusinessValue

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the idea and cascades to its comments and likes.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own ideas")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// ListPosts returns the requested page of ideas, newest first. Pages are
// 1-indexed; out-of-range pages yield an empty slice, a non-positive page is
// a validation error.
func (s *PostService) ListPosts(ctx context.Context, page int, currentUserID uint) ([]*models.Post, error) {
	offset, err := pageOffset(page)
	if err != nil {
		return nil, err
	}
	return s.postRepo.List(ctx, PostsPerPage, offset, currentUserID)
}

// ListPostsByAuthor returns the requested page of ideas by the named user,
// newest first. An unknown username is a not-found error.
func (s *PostService) ListPostsByAuthor(ctx context.Context, username string, page int, currentUserID uint) ([]*models.Post, error) {
	offset, err := pageOffset(page)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	return s.postRepo.GetByUserID(ctx, user.ID, PostsPerPage, offset, currentUserID)
}

func pageOffset(page int) (int, error) {
	if page <= 0 {
		return 0, models.NewValidationError("Page must be positive")
	}
	return (page - 1) * PostsPerPage, nil
}

// LikePost records the user's endorsement. Repeating it is a no-op, never a
// duplicate and never an error.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return err
	}
	return s.postRepo.Like(ctx, userID, postID)
}

// UnlikePost removes the endorsement if present; removing an absent like is a
// no-op.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return err
	}
	return s.postRepo.Unlike(ctx, userID, postID)
}

// HasLiked reports whether the (user, post) membership exists.
func (s *PostService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.postRepo.IsLiked(ctx, userID, postID)
}

// LikeCount returns the number of likes on the post.
func (s *PostService) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.postRepo.CountLikes(ctx, postID)
}
