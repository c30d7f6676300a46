// pkg/utils/response.go
package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"snaplens-backend/internal/models"
	apperrors "snaplens-backend/pkg/errors"
)

// SendJSONResponse sends a JSON response with proper error handling
func SendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	// Marshal the data first to catch any encoding errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("Failed to marshal JSON response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		fallbackResponse := map[string]string{
			"error": "Internal server error: failed to encode response",
		}
		json.NewEncoder(w).Encode(fallbackResponse)
		return
	}

	w.WriteHeader(statusCode)
	if _, writeErr := w.Write(jsonData); writeErr != nil {
		zap.L().Error("Failed to write response", zap.Error(writeErr))
	}
}

// SendErrorResponse sends an error response, mapping AppError status codes
func SendErrorResponse(w http.ResponseWriter, err error) {
	statusCode := apperrors.GetStatusCode(err)

	if appErr, ok := err.(*apperrors.AppError); ok {
		response := models.ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		}
		SendJSONResponse(w, statusCode, response)
		return
	}

	response := models.ErrorResponse{
		Error: err.Error(),
	}
	SendJSONResponse(w, statusCode, response)
}

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewAppError(apperrors.ErrBadRequest, http.StatusBadRequest, "invalid JSON format")
	}
	return nil
}
