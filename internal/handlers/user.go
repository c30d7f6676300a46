// internal/handlers/user.go
package handlers

import (
	"net/http"

	"snaplens-backend/internal/services"
	apperrors "snaplens-backend/pkg/errors"
	"snaplens-backend/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.SendErrorResponse(w, apperrors.NewAppError(
			apperrors.ErrValidation,
			http.StatusBadRequest,
			"email required",
		))
		return
	}

	response, err := h.userService.GetProfile(r.Context(), email)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, response)
}
