package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"snaplens-backend/internal/models"
	apperrors "snaplens-backend/pkg/errors"
)

func TestUserService_Signup(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	repo.On("GetByEmail", mock.Anything, "a@b.com").
		Return(nil, apperrors.NewUserNotFoundError())
	repo.On("Create", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
		if user.Email != "a@b.com" || user.Credits != models.DefaultCredits {
			return false
		}
		// Stored hash must verify against the submitted password
		return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret")) == nil
	})).Return(nil)

	resp, err := svc.Signup(context.Background(), &models.SignupRequest{
		Email:    "a@b.com",
		Name:     "Alice",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	repo.AssertExpectations(t)
}

func TestUserService_Signup_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	// a@b.com was registered earlier; A@B.COM normalizes to the same key
	repo.On("GetByEmail", mock.Anything, "a@b.com").
		Return(&models.User{Email: "a@b.com"}, nil)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Email:    "A@B.COM",
		Password: "secret",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrUserAlreadyExists))
	assert.Equal(t, 409, apperrors.GetStatusCode(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Signup_Validation(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	cases := []*models.SignupRequest{
		{Email: "", Password: "secret"},
		{Email: "a@b.com", Password: ""},
		{Email: "not-an-email", Password: "secret"},
	}
	for _, req := range cases {
		_, err := svc.Signup(context.Background(), req)
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrValidation))
		assert.Equal(t, 400, apperrors.GetStatusCode(err))
	}
}

func TestUserService_GetProfile(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	repo.On("GetByEmail", mock.Anything, "a@b.com").
		Return(&models.User{Email: "a@b.com", Credits: 5}, nil)

	resp, err := svc.GetProfile(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Credits)
	require.NotNil(t, resp.User)
	assert.Equal(t, "a@b.com", resp.User.Email)
}

func TestUserService_GetProfile_MissingAccount(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	repo.On("GetByEmail", mock.Anything, "ghost@b.com").
		Return(nil, apperrors.NewUserNotFoundError())

	resp, err := svc.GetProfile(context.Background(), "ghost@b.com")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Credits)
	assert.Nil(t, resp.User)
}
