package service

import (
	"context"
	"strings"

	"ideaboard/internal/models"
	"ideaboard/internal/repository"
	"ideaboard/internal/validation"
)

// CommentService owns comment creation and listing. Comments carry a
// self-reported display name; there is deliberately no ownership check against
// an authenticated identity.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type AddCommentInput struct {
	PostID   uint
	Username string
	Body     string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Body = strings.TrimSpace(in.Body)
	if err := validation.ValidateDisplayName(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCommentBody(in.Body); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment := &models.Comment{
		Body:     in.Body,
		Username: in.Username,
		PostID:   in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns all comments for the post in insertion order, oldest
// first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
