// internal/models/user.go
package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one account document: credentials, credit balance and the
// embedded wishlist array.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	HashedPassword string             `bson:"hashedPassword,omitempty" json:"-"`
	Credits        int                `bson:"credits" json:"credits"`
	Wishlist       []WishlistItem     `bson:"wishlist" json:"wishlist"`
}

// DefaultCredits is the balance granted to a newly provisioned account.
const DefaultCredits = 5

// WishlistItem is a persisted favorite. Membership within one account's
// wishlist is unique by ID.
type WishlistItem struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	ImageURL  string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	LinkURL   string    `bson:"linkUrl,omitempty" json:"linkUrl,omitempty"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"`
	PriceText string    `bson:"priceText,omitempty" json:"priceText,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if !isValidEmail(r.Email) {
		return errors.New("invalid email format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SigninRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// NormalizeEmail lower-cases an email address. Applied on every lookup and
// write path so the address is the single case-insensitive account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	// Basic email validation - in production, use a proper validation library
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
