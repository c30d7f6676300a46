// internal/handlers/lens.go
package handlers

import (
	"io"
	"net/http"

	"snaplens-backend/internal/models"
	"snaplens-backend/internal/services"
	apperrors "snaplens-backend/pkg/errors"
	"snaplens-backend/pkg/utils"
)

// maxUploadBytes bounds the in-memory portion of the multipart parse.
const maxUploadBytes = 32 << 20

type LensHandler struct {
	lensService services.LensService
}

func NewLensHandler(lensService services.LensService) *LensHandler {
	return &LensHandler{
		lensService: lensService,
	}
}

// Status is a liveness probe for the search path.
func (h *LensHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

func (h *LensHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.SendErrorResponse(w, apperrors.NewAppError(
			apperrors.ErrBadRequest,
			http.StatusBadRequest,
			"Missing image",
		))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.SendErrorResponse(w, apperrors.NewAppError(
			apperrors.ErrBadRequest,
			http.StatusBadRequest,
			"Missing image",
		))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.SendErrorResponse(w, apperrors.NewAppError(
			apperrors.ErrBadRequest,
			http.StatusBadRequest,
			"failed to read image upload",
		))
		return
	}

	filename := r.FormValue("filename")
	if filename == "" {
		filename = header.Filename
	}
	contentType := header.Header.Get("Content-Type")

	response, err := h.lensService.Search(r.Context(), image, filename, contentType)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, response)
}
