package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"snaplens-backend/internal/models"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignupResponse), args.Error(1)
}

func (m *mockUserService) GetProfile(ctx context.Context, email string) (*models.UserResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserResponse), args.Error(1)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SigninResponse), args.Error(1)
}

type mockCreditsService struct {
	mock.Mock
}

func (m *mockCreditsService) Debit(ctx context.Context, req *models.DebitCreditsRequest) (*models.CreditsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditsResponse), args.Error(1)
}

func (m *mockCreditsService) Grant(ctx context.Context, email string, amount int) (*models.CreditsResponse, error) {
	args := m.Called(ctx, email, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditsResponse), args.Error(1)
}

type mockWishlistService struct {
	mock.Mock
}

func (m *mockWishlistService) List(ctx context.Context, email string) (*models.WishlistResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistResponse), args.Error(1)
}

func (m *mockWishlistService) Add(ctx context.Context, req *models.WishlistAddRequest) (*models.WishlistResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistResponse), args.Error(1)
}

func (m *mockWishlistService) Remove(ctx context.Context, req *models.WishlistRemoveRequest) (*models.WishlistResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistResponse), args.Error(1)
}

type mockLensService struct {
	mock.Mock
}

func (m *mockLensService) Search(ctx context.Context, image []byte, filename, contentType string) (*models.LensResponse, error) {
	args := m.Called(ctx, image, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LensResponse), args.Error(1)
}

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) BuildCheckoutURL(variantID, email string) string {
	args := m.Called(variantID, email)
	return args.String(0)
}

func (m *mockPaymentService) VerifySignature(rawBody []byte, signature string) bool {
	args := m.Called(rawBody, signature)
	return args.Bool(0)
}

func (m *mockPaymentService) HandleWebhook(ctx context.Context, rawBody []byte) error {
	args := m.Called(ctx, rawBody)
	return args.Error(0)
}
