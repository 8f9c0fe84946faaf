package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// Error codes of the API error envelope
const (
	codeAuthInvalidLoginDetails = "auth_invalid_user_login_details"
	codeAuthFailed              = "auth_failed"
	codeRateInvalid             = "rate_invalid"
	codeConversionCreateFailed  = "conversion_create_failed"
	codeInternal                = "internal_application_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string, errs models.FieldErrors) {
	writeJSON(w, status, models.ErrorResponse{ErrorCode: code, ErrorMessages: errs})
}

// writeBaseError reports a failure that belongs to no single parameter.
func writeBaseError(w http.ResponseWriter, status int, code, fieldCode, message string) {
	errs := models.FieldErrors{}
	errs.Add("base", fieldCode, message, nil)
	writeError(w, status, code, errs)
}

func writeInternalError(w http.ResponseWriter) {
	writeBaseError(w, http.StatusInternalServerError, codeInternal, codeInternal, "Internal application error")
}

func writeUnauthorized(w http.ResponseWriter) {
	errs := models.FieldErrors{}
	errs.Add("username", "invalid_supplied_credentials", "Authentication failed with the supplied credentials", nil)
	writeError(w, http.StatusUnauthorized, codeAuthFailed, errs)
}

func writeRateUnavailable(w http.ResponseWriter) {
	writeBaseError(w, http.StatusServiceUnavailable, codeInternal, "rate_unavailable", "Rate is currently unavailable for the currency pair")
}
