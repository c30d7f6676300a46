package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"snaplens-backend/internal/models"
)

// mockUserRepository is a testify mock over repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) IncrementCredits(ctx context.Context, email string, delta int) (*models.User, error) {
	args := m.Called(ctx, email, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) EnsureAccount(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockUserRepository) PushWishlistItem(ctx context.Context, email string, item *models.WishlistItem) error {
	args := m.Called(ctx, email, item)
	return args.Error(0)
}

func (m *mockUserRepository) PullWishlistItem(ctx context.Context, email, id string) (*models.User, error) {
	args := m.Called(ctx, email, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func intPtr(v int) *int {
	return &v
}
