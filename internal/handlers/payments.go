// internal/handlers/payments.go
package handlers

import (
	"io"
	"net/http"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/services"
	apperrors "snaplens-backend/pkg/errors"
	"snaplens-backend/pkg/utils"
)

type PaymentsHandler struct {
	paymentService services.PaymentService
}

func NewPaymentsHandler(paymentService services.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentsHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCheckoutRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	if err := req.Validate(); err != nil {
		utils.SendErrorResponse(w, apperrors.NewValidationError(err.Error()))
		return
	}

	url := h.paymentService.BuildCheckoutURL(req.VariantID.String(), req.Email)
	utils.SendJSONResponse(w, http.StatusOK, models.CheckoutResponse{URL: url})
}

// Webhook verifies the provider signature over the raw body and hands the
// event to the payment service. The signature check happens before any
// parsing; a mismatch rejects the request outright.
func (h *PaymentsHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		utils.SendErrorResponse(w, apperrors.NewAppError(
			apperrors.ErrBadRequest,
			http.StatusBadRequest,
			"failed to read request body",
		))
		return
	}

	signature := r.Header.Get("X-Signature")
	if !h.paymentService.VerifySignature(rawBody, signature) {
		utils.SendErrorResponse(w, apperrors.NewInvalidSignatureError())
		return
	}

	if err := h.paymentService.HandleWebhook(r.Context(), rawBody); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, models.WebhookResponse{Status: "ok"})
}
