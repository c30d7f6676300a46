// internal/handlers/credits.go
package handlers

import (
	"net/http"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/services"
	"snaplens-backend/pkg/utils"
)

type CreditsHandler struct {
	creditsService services.CreditsService
}

func NewCreditsHandler(creditsService services.CreditsService) *CreditsHandler {
	return &CreditsHandler{
		creditsService: creditsService,
	}
}

func (h *CreditsHandler) DebitCredits(w http.ResponseWriter, r *http.Request) {
	var req models.DebitCreditsRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	response, err := h.creditsService.Debit(r.Context(), &req)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, response)
}
