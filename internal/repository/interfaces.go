// internal/repository/interfaces.go
package repository

import (
	"context"

	"snaplens-backend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// IncrementCredits applies a single atomic $inc to the account's balance,
	// creating the account if absent (mutate-or-create). Returns the updated
	// document.
	IncrementCredits(ctx context.Context, email string, delta int) (*models.User, error)
	// EnsureAccount upserts an empty account with default credits when none
	// exists for the email. A no-op for existing accounts.
	EnsureAccount(ctx context.Context, email string) error
	// PushWishlistItem appends the item unless one with the same id is
	// already present (set semantics by id).
	PushWishlistItem(ctx context.Context, email string, item *models.WishlistItem) error
	// PullWishlistItem removes any wishlist entry matching the id and
	// returns the updated document.
	PullWishlistItem(ctx context.Context, email, id string) (*models.User, error)
}
