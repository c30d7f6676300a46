// internal/models/credits.go
package models

import "errors"

type DebitCreditsRequest struct {
	Email  string `json:"email"`
	Amount *int   `json:"amount"`
}

func (r *DebitCreditsRequest) Validate() error {
	if r.Email == "" || r.Amount == nil {
		return errors.New("email and amount required")
	}
	return nil
}
