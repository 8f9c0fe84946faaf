package handlers

//go:generate mockgen -source=conversions_create.go -destination=conversions_create_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-convert/internal/jwt"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/sbilibin2017/gw-currency-convert/internal/services"
)

// ConversionCreator books a conversion for a contact.
type ConversionCreator interface {
	Create(ctx context.Context, contactID, accountID uuid.UUID, req models.ConversionRequest, requestID string) (*models.ConversionResult, error)
}

// NewCreateConversionHandler returns an HTTP handler that books a conversion.
// The unique_request_id parameter is optional and defaults to the request ID.
// @Summary Create conversion
// @Description Books a conversion at the current client rate
// @Tags conversions
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-Auth-Token header string true "Auth token"
// @Param buy_currency formData string true "Currency to buy" default(EUR)
// @Param sell_currency formData string true "Currency to sell" default(GBP)
// @Param amount formData string true "Amount of the fixed side" default(10000)
// @Param fixed_side formData string true "buy or sell" Enums(buy, sell)
// @Param reason formData string true "Reason" default(Top up Euros balance)
// @Param term_agreement formData boolean true "Terms accepted" default(true)
// @Param unique_request_id formData string false "Client idempotency reference"
// @Success 200 {object} models.ConversionResult "Conversion"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Authentication failed"
// @Failure 503 {object} models.ErrorResponse "Rate unavailable"
// @Router /v2/conversions/create [post]
func NewCreateConversionHandler(
	svc ConversionCreator,
	claimsGetter func(ctx context.Context) *jwt.Claims,
	requestIDGetter func(ctx context.Context) string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsGetter(r.Context())
		if claims == nil {
			writeUnauthorized(w)
			return
		}

		if err := r.ParseForm(); err != nil {
			logger.Log.Errorw("failed to parse form", "err", err)
			writeBaseError(w, http.StatusBadRequest, codeConversionCreateFailed, "invalid_request_body", "Request body could not be parsed")
			return
		}

		req, errs := models.ConversionRequestFromValues(r.PostForm)
		if !errs.Empty() {
			writeError(w, http.StatusBadRequest, codeConversionCreateFailed, errs)
			return
		}

		uniqueID := r.PostForm.Get("unique_request_id")
		if uniqueID == "" {
			uniqueID = requestIDGetter(r.Context())
		}

		conversion, err := svc.Create(r.Context(), claims.ContactID, claims.AccountID, req, uniqueID)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, codeConversionCreateFailed, verr.Fields)
			case errors.Is(err, services.ErrRateUnavailable):
				writeRateUnavailable(w)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, conversion)
	}
}

// RegisterCreateConversionHandler registers the conversion route.
func RegisterCreateConversionHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/v2/conversions/create", h)
}
