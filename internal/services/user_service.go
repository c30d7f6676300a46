// internal/services/user_service.go
package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/repository"
	apperrors "snaplens-backend/pkg/errors"
)

type UserService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
	GetProfile(ctx context.Context, email string) (*models.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	email := models.NormalizeEmail(req.Email)

	// Check if the email is already registered
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.NewUserAlreadyExistsError()
	}
	if !apperrors.IsErrorType(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          email,
		Name:           req.Name,
		HashedPassword: string(hash),
		Credits:        models.DefaultCredits,
		Wishlist:       []models.WishlistItem{},
	}

	// A concurrent signup still loses here: the unique email index maps the
	// duplicate insert to the same 409.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &models.SignupResponse{
		Message: "User registered successfully",
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, email string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrUserNotFound) {
			return &models.UserResponse{Credits: 0, User: nil}, nil
		}
		return nil, err
	}

	return &models.UserResponse{
		Credits: user.Credits,
		User:    user,
	}, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, models.NormalizeEmail(email))
}
