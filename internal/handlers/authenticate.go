package handlers

//go:generate mockgen -source=authenticate.go -destination=authenticate_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/sbilibin2017/gw-currency-convert/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, loginID, apiKey string) (string, error)
}

// NewAuthenticateHandler returns an HTTP handler that opens an API session.
// @Summary Authenticate
// @Description Exchanges a login ID and API key for an auth token
// @Tags authenticate
// @Accept x-www-form-urlencoded
// @Produce json
// @Param login_id formData string true "Login ID" default(development@currencycloud.com)
// @Param api_key formData string true "API key"
// @Success 200 {object} models.AuthenticateResponse "Auth token"
// @Failure 400 {object} models.ErrorResponse "Missing parameters"
// @Failure 401 {object} models.ErrorResponse "Authentication failed"
// @Failure 500 {object} models.ErrorResponse "Internal application error"
// @Router /v2/authenticate/api [post]
func NewAuthenticateHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logger.Log.Errorw("failed to parse form", "err", err)
			writeBaseError(w, http.StatusBadRequest, codeAuthInvalidLoginDetails, "invalid_request_body", "Request body could not be parsed")
			return
		}

		req := models.AuthenticateRequest{
			LoginID: r.PostForm.Get("login_id"),
			APIKey:  r.PostForm.Get("api_key"),
		}

		errs := models.FieldErrors{}
		if req.LoginID == "" {
			errs.Add("login_id", "login_id_is_required", "login_id is required", nil)
		}
		if req.APIKey == "" {
			errs.Add("api_key", "api_key_is_required", "api_key is required", nil)
		}
		if !errs.Empty() {
			writeError(w, http.StatusBadRequest, codeAuthInvalidLoginDetails, errs)
			return
		}

		token, err := svc.Login(r.Context(), req.LoginID, req.APIKey)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrContactNotFound):
				writeUnauthorized(w)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.AuthenticateResponse{AuthToken: token})
	}
}

// RegisterAuthenticateHandler registers the login route.
func RegisterAuthenticateHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/v2/authenticate/api", h)
}
