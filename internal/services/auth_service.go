// internal/services/auth_service.go
package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/repository"
	apperrors "snaplens-backend/pkg/errors"
)

type AuthService interface {
	Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	email := models.NormalizeEmail(req.Email)

	// Missing account, missing hash and wrong password all collapse into the
	// same generic failure so callers cannot enumerate accounts.
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if user.HashedPassword == "" {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.SigninResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
