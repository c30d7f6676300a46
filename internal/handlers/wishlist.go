// internal/handlers/wishlist.go
package handlers

import (
	"net/http"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/services"
	apperrors "snaplens-backend/pkg/errors"
	"snaplens-backend/pkg/utils"
)

type WishlistHandler struct {
	wishlistService services.WishlistService
}

func NewWishlistHandler(wishlistService services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.SendErrorResponse(w, apperrors.NewAppError(
			apperrors.ErrValidation,
			http.StatusBadRequest,
			"email required",
		))
		return
	}

	response, err := h.wishlistService.List(r.Context(), email)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, response)
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.WishlistAddRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	response, err := h.wishlistService.Add(r.Context(), &req)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, response)
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req models.WishlistRemoveRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	response, err := h.wishlistService.Remove(r.Context(), &req)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, response)
}
