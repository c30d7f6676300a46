// internal/services/credits_service.go
package services

import (
	"context"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/repository"
	apperrors "snaplens-backend/pkg/errors"
)

type CreditsService interface {
	Debit(ctx context.Context, req *models.DebitCreditsRequest) (*models.CreditsResponse, error)
	Grant(ctx context.Context, email string, amount int) (*models.CreditsResponse, error)
}

type creditsService struct {
	userRepo repository.UserRepository
}

func NewCreditsService(userRepo repository.UserRepository) CreditsService {
	return &creditsService{
		userRepo: userRepo,
	}
}

// Debit decrements the balance by the absolute amount, creating the account
// if absent. There is no floor: balances may go negative.
func (s *creditsService) Debit(ctx context.Context, req *models.DebitCreditsRequest) (*models.CreditsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	amount := *req.Amount
	if amount < 0 {
		amount = -amount
	}

	user, err := s.userRepo.IncrementCredits(ctx, models.NormalizeEmail(req.Email), -amount)
	if err != nil {
		return nil, err
	}

	return &models.CreditsResponse{Credits: user.Credits}, nil
}

func (s *creditsService) Grant(ctx context.Context, email string, amount int) (*models.CreditsResponse, error) {
	user, err := s.userRepo.IncrementCredits(ctx, models.NormalizeEmail(email), amount)
	if err != nil {
		return nil, err
	}

	return &models.CreditsResponse{Credits: user.Credits}, nil
}
