package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snaplens-backend/internal/models"
	apperrors "snaplens-backend/pkg/errors"
)

func TestAuthHandler_Signup(t *testing.T) {
	userSvc := new(mockUserService)
	handler := NewAuthHandler(userSvc, new(mockAuthService))

	userSvc.On("Signup", mock.Anything, mock.MatchedBy(func(req *models.SignupRequest) bool {
		return req.Email == "a@b.com" && req.Password == "secret"
	})).Return(&models.SignupResponse{Message: "User registered successfully"}, nil)

	body := bytes.NewBufferString(`{"email":"a@b.com","name":"Alice","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)

	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	userSvc := new(mockUserService)
	handler := NewAuthHandler(userSvc, new(mockAuthService))

	userSvc.On("Signup", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewUserAlreadyExistsError())

	body := bytes.NewBufferString(`{"email":"A@B.COM","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)

	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Signin(t *testing.T) {
	authSvc := new(mockAuthService)
	handler := NewAuthHandler(new(mockUserService), authSvc)

	authSvc.On("Signin", mock.Anything, mock.Anything).
		Return(&models.SigninResponse{Token: "jwt-token", User: &models.User{Email: "a@b.com"}}, nil)

	body := bytes.NewBufferString(`{"email":"a@b.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", body)

	rec := httptest.NewRecorder()
	handler.Signin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}

func TestAuthHandler_Signin_Failure(t *testing.T) {
	authSvc := new(mockAuthService)
	handler := NewAuthHandler(new(mockUserService), authSvc)

	authSvc.On("Signin", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewUnauthorizedError("invalid email or password"))

	body := bytes.NewBufferString(`{"email":"a@b.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", body)

	rec := httptest.NewRecorder()
	handler.Signin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
