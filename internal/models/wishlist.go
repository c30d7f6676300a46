// internal/models/wishlist.go
package models

import "errors"

type WishlistAddRequest struct {
	Email string       `json:"email"`
	Item  *ProductItem `json:"item"`
}

func (r *WishlistAddRequest) Validate() error {
	if r.Email == "" || r.Item == nil || r.Item.ID == "" || r.Item.Title == "" {
		return errors.New("email and item required")
	}
	return nil
}

type WishlistRemoveRequest struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

func (r *WishlistRemoveRequest) Validate() error {
	if r.Email == "" || r.ID == "" {
		return errors.New("email and id required")
	}
	return nil
}
