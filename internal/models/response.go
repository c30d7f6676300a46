// internal/models/response.go
package models

type SignupResponse struct {
	Message string `json:"message"`
}

type SigninResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UserResponse struct {
	Credits int   `json:"credits"`
	User    *User `json:"user"`
}

type CreditsResponse struct {
	Credits int `json:"credits"`
}

type WishlistResponse struct {
	Wishlist []WishlistItem `json:"wishlist"`
}

type LensResponse struct {
	Items []ProductItem `json:"items"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type WebhookResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
