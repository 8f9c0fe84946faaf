package handlers

//go:generate mockgen -source=rates_detailed.go -destination=rates_detailed_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/sbilibin2017/gw-currency-convert/internal/services"
)

// DetailedRater prices a conversion without booking it.
type DetailedRater interface {
	DetailedRate(ctx context.Context, req models.QuoteRequest) (*models.QuoteResult, error)
}

// NewDetailedRateHandler returns an HTTP handler that quotes a currency pair.
// @Summary Get detailed rate
// @Description Quotes the client rate and amounts for a conversion
// @Tags rates
// @Produce json
// @Param X-Auth-Token header string true "Auth token"
// @Param buy_currency query string true "Currency to buy" default(EUR)
// @Param sell_currency query string true "Currency to sell" default(GBP)
// @Param amount query string true "Amount of the fixed side" default(10000)
// @Param fixed_side query string true "buy or sell" Enums(buy, sell)
// @Success 200 {object} models.QuoteResult "Quote"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Authentication failed"
// @Failure 503 {object} models.ErrorResponse "Rate unavailable"
// @Router /v2/rates/detailed [get]
func NewDetailedRateHandler(svc DetailedRater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, errs := models.QuoteRequestFromValues(r.URL.Query())
		if !errs.Empty() {
			writeError(w, http.StatusBadRequest, codeRateInvalid, errs)
			return
		}

		quote, err := svc.DetailedRate(r.Context(), req)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, codeRateInvalid, verr.Fields)
			case errors.Is(err, services.ErrRateUnavailable):
				writeRateUnavailable(w)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

// RegisterDetailedRateHandler registers the quote route.
func RegisterDetailedRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/v2/rates/detailed", h)
}
