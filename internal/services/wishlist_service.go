// internal/services/wishlist_service.go
package services

import (
	"context"
	"time"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/repository"
	apperrors "snaplens-backend/pkg/errors"
)

type WishlistService interface {
	List(ctx context.Context, email string) (*models.WishlistResponse, error)
	Add(ctx context.Context, req *models.WishlistAddRequest) (*models.WishlistResponse, error)
	Remove(ctx context.Context, req *models.WishlistRemoveRequest) (*models.WishlistResponse, error)
}

type wishlistService struct {
	userRepo repository.UserRepository
}

func NewWishlistService(userRepo repository.UserRepository) WishlistService {
	return &wishlistService{
		userRepo: userRepo,
	}
}

func (s *wishlistService) List(ctx context.Context, email string) (*models.WishlistResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrUserNotFound) {
			return &models.WishlistResponse{Wishlist: []models.WishlistItem{}}, nil
		}
		return nil, err
	}

	return &models.WishlistResponse{Wishlist: wishlistOrEmpty(user)}, nil
}

// Add upserts the account and set-inserts the item by id. Re-adding an id
// already present is a no-op.
func (s *wishlistService) Add(ctx context.Context, req *models.WishlistAddRequest) (*models.WishlistResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	email := models.NormalizeEmail(req.Email)

	if err := s.userRepo.EnsureAccount(ctx, email); err != nil {
		return nil, err
	}

	item := &models.WishlistItem{
		ID:        req.Item.ID,
		Title:     req.Item.Title,
		ImageURL:  req.Item.ImageURL,
		LinkURL:   req.Item.LinkURL,
		Source:    req.Item.Source,
		PriceText: req.Item.PriceText,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.PushWishlistItem(ctx, email, item); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &models.WishlistResponse{Wishlist: wishlistOrEmpty(user)}, nil
}

// Remove pulls any entry matching the id. Removing a non-existent id, or
// removing from a non-existent account, is a no-op.
func (s *wishlistService) Remove(ctx context.Context, req *models.WishlistRemoveRequest) (*models.WishlistResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	user, err := s.userRepo.PullWishlistItem(ctx, models.NormalizeEmail(req.Email), req.ID)
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrUserNotFound) {
			return &models.WishlistResponse{Wishlist: []models.WishlistItem{}}, nil
		}
		return nil, err
	}

	return &models.WishlistResponse{Wishlist: wishlistOrEmpty(user)}, nil
}

func wishlistOrEmpty(user *models.User) []models.WishlistItem {
	if user == nil || user.Wishlist == nil {
		return []models.WishlistItem{}
	}
	return user.Wishlist
}
