// internal/models/payment.go
package models

import "errors"

type CreateCheckoutRequest struct {
	VariantID StringOrNumber `json:"variantId"`
	Email     string         `json:"email"`
}

func (r *CreateCheckoutRequest) Validate() error {
	if r.VariantID == "" || r.Email == "" {
		return errors.New("variantId and email required")
	}
	return nil
}

// WebhookEvent is the Lemon Squeezy notification body. Only the fields the
// credit-grant path reads are decoded.
type WebhookEvent struct {
	Meta struct {
		EventName string `json:"event_name"`
	} `json:"meta"`
	EventName string `json:"event_name"`
	Data      struct {
		Attributes struct {
			UserEmail    string         `json:"user_email"`
			VariantID    StringOrNumber `json:"variant_id"`
			CheckoutData struct {
				Custom struct {
					UserEmail string `json:"user_email"`
				} `json:"custom"`
			} `json:"checkout_data"`
		} `json:"attributes"`
	} `json:"data"`
}

// Type returns the event name, preferring the nested meta field.
func (e *WebhookEvent) Type() string {
	if e.Meta.EventName != "" {
		return e.Meta.EventName
	}
	return e.EventName
}

// Email returns the purchaser address, falling back to the checkout custom
// data when the top-level attribute is absent.
func (e *WebhookEvent) Email() string {
	if e.Data.Attributes.UserEmail != "" {
		return e.Data.Attributes.UserEmail
	}
	return e.Data.Attributes.CheckoutData.Custom.UserEmail
}
