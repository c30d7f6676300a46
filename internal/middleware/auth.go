// internal/middleware/auth.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "snaplens-backend/pkg/errors"
	"snaplens-backend/pkg/utils"
)

type contextKey string

const emailContextKey contextKey = "email"

// SessionClaims are the claims carried by a sign-in token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth validates the HS256 session token issued at sign-in and puts the
// account email into the request context.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.SendErrorResponse(w, apperrors.NewUnauthorizedError("authentication token not found"))
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.SendErrorResponse(w, apperrors.NewUnauthorizedError("invalid authorization format. Expected: Bearer <token>"))
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				utils.SendErrorResponse(w, apperrors.NewUnauthorizedError("bearer token is empty"))
				return
			}

			claims, err := verifySessionToken(tokenString, secret)
			if err != nil {
				utils.SendErrorResponse(w, apperrors.NewUnauthorizedError("authentication failed: "+err.Error()))
				return
			}

			if claims.Email == "" {
				utils.SendErrorResponse(w, apperrors.NewUnauthorizedError("email not found in token"))
				return
			}

			ctx := context.WithValue(r.Context(), emailContextKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifySessionToken(tokenString string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetEmailFromContext returns the authenticated account email placed by Auth.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok
}
