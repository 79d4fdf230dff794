package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ideaboard/internal/models"
	"ideaboard/internal/repository"
	"ideaboard/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenPurpose tags reset tokens so a session token can never pass as one.
const resetTokenPurpose = "password_reset"

// AuthService owns registration, credential checks, and password reset tokens.
type AuthService struct {
	userRepo repository.UserRepository
	secret   string
	resetTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret string, resetTTL time.Duration) *AuthService {
	if resetTTL <= 0 {
		resetTTL = 30 * time.Minute
	}
	return &AuthService{
		userRepo: userRepo,
		secret:   secret,
		resetTTL: resetTTL,
	}
}

// Register creates a new account. A duplicate username or email is a conflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("That username is taken")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("That email is taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewStoreError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	// The repository maps a racing duplicate insert to a conflict as well; the
	// unique constraints are the last line of defense.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks up the account by email and verifies the password. A bad
// email or password yields an unauthorized error; a store fault propagates
// unchanged so callers can tell them apart.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// IssueResetToken signs a time-limited opaque token encoding the user id.
func (s *AuthService) IssueResetToken(user *models.User) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     strconv.FormatUint(uint64(user.ID), 10),
		"purpose": resetTokenPurpose,
		"exp":     now.Add(s.resetTTL).Unix(),
		"iat":     now.Unix(),
		"jti":     uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyResetToken decodes a reset token and returns the user it names.
// Malformed, expired, or foreign-signed tokens all yield nil; this never
// escalates to the caller.
func (s *AuthService) VerifyResetToken(ctx context.Context, tokenString string) *models.User {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetTokenPurpose {
		return nil
	}
	subStr, ok := claims["sub"].(string)
	if !ok {
		return nil
	}
	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, uint(userID))
	if err != nil {
		return nil
	}
	return user
}

// ResetPassword verifies the token and installs the new password.
func (s *AuthService) ResetPassword(ctx context.Context, tokenString, newPassword string) (*models.User, error) {
	user := s.VerifyResetToken(ctx, tokenString)
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid or expired reset token")
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewStoreError(err)
	}

	user.Password = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
