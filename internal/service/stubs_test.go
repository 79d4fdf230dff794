package service

import (
	"context"

	"ideaboard/internal/models"
)

// Function-field stubs so each test wires only the calls it cares about.

type postRepoStub struct {
	CreateFn      func(ctx context.Context, post *models.Post) error
	GetByIDFn     func(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserIDFn func(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	ListFn        func(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	UpdateFn      func(ctx context.Context, post *models.Post) error
	DeleteFn      func(ctx context.Context, id uint) error
	IsLikedFn     func(ctx context.Context, userID, postID uint) (bool, error)
	LikeFn        func(ctx context.Context, userID, postID uint) error
	UnlikeFn      func(ctx context.Context, userID, postID uint) error
	CountLikesFn  func(ctx context.Context, postID uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	if s.CreateFn == nil {
		return nil
	}
	return s.CreateFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	if s.GetByIDFn == nil {
		return nil, models.NewNotFoundError("Post", id)
	}
	return s.GetByIDFn(ctx, id, currentUserID)
}

func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if s.GetByUserIDFn == nil {
		return nil, nil
	}
	return s.GetByUserIDFn(ctx, userID, limit, offset, currentUserID)
}

func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx, limit, offset, currentUserID)
}

func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	if s.UpdateFn == nil {
		return nil
	}
	return s.UpdateFn(ctx, post)
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	if s.DeleteFn == nil {
		return nil
	}
	return s.DeleteFn(ctx, id)
}

func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	if s.IsLikedFn == nil {
		return false, nil
	}
	return s.IsLikedFn(ctx, userID, postID)
}

func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	if s.LikeFn == nil {
		return nil
	}
	return s.LikeFn(ctx, userID, postID)
}

func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	if s.UnlikeFn == nil {
		return nil
	}
	return s.UnlikeFn(ctx, userID, postID)
}

func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	if s.CountLikesFn == nil {
		return 0, nil
	}
	return s.CountLikesFn(ctx, postID)
}

type userRepoStub struct {
	GetByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	CreateFn        func(ctx context.Context, user *models.User) error
	UpdateFn        func(ctx context.Context, user *models.User) error
	ListFn          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.GetByIDFn == nil {
		return nil, models.NewNotFoundError("User", id)
	}
	return s.GetByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.GetByEmailFn == nil {
		return nil, nil
	}
	return s.GetByEmailFn(ctx, email)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.GetByUsernameFn == nil {
		return nil, nil
	}
	return s.GetByUsernameFn(ctx, username)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.CreateFn == nil {
		return nil
	}
	return s.CreateFn(ctx, user)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.UpdateFn == nil {
		return nil
	}
	return s.UpdateFn(ctx, user)
}

func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx, limit, offset)
}

type commentRepoStub struct {
	CreateFn      func(ctx context.Context, comment *models.Comment) error
	ListByPostFn  func(ctx context.Context, postID uint) ([]*models.Comment, error)
	CountByPostFn func(ctx context.Context, postID uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	if s.CreateFn == nil {
		return nil
	}
	return s.CreateFn(ctx, comment)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if s.ListByPostFn == nil {
		return nil, nil
	}
	return s.ListByPostFn(ctx, postID)
}

func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	if s.CountByPostFn == nil {
		return 0, nil
	}
	return s.CountByPostFn(ctx, postID)
}
