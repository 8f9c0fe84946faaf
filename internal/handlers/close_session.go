package handlers

//go:generate mockgen -source=close_session.go -destination=close_session_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-convert/internal/jwt"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// Logouter closes a session.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewCloseSessionHandler returns an HTTP handler that closes the caller's session.
// @Summary Close session
// @Description Revokes the auth token of the request
// @Tags authenticate
// @Produce json
// @Param X-Auth-Token header string true "Auth token"
// @Success 200 {object} models.CloseSessionResponse "Session closed"
// @Failure 401 {object} models.ErrorResponse "Authentication failed"
// @Failure 500 {object} models.ErrorResponse "Internal application error"
// @Router /v2/authenticate/close_session [post]
func NewCloseSessionHandler(svc Logouter, claimsGetter func(ctx context.Context) *jwt.Claims) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsGetter(r.Context())
		if claims == nil || claims.ExpiresAt == nil {
			writeUnauthorized(w)
			return
		}

		if err := svc.Logout(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, models.CloseSessionResponse{})
	}
}

// RegisterCloseSessionHandler registers the logout route.
func RegisterCloseSessionHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/v2/authenticate/close_session", h)
}
