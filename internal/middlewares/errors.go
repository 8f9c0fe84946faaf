package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// writeError answers with the API error envelope.
func writeError(w http.ResponseWriter, status int, resp models.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Errorw("failed to write error response", "error", err)
	}
}

func internalError() models.ErrorResponse {
	errs := models.FieldErrors{}
	errs.Add("base", "internal_application_error", "Internal application error", nil)
	return models.ErrorResponse{ErrorCode: "internal_application_error", ErrorMessages: errs}
}
