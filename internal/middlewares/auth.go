package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-convert/internal/jwt"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports closed sessions.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware rejects requests without a live session token and puts its claims into the context.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, authFailed())
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, authFailed())
				return
			}

			revoked, err := revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				logger.Log.Errorw("failed to check session", "jti", claims.ID, "err", err)
				writeError(w, http.StatusInternalServerError, internalError())
				return
			}
			if revoked {
				logger.Log.Errorw("authorization failed", "jti", claims.ID, "err", "session closed")
				writeError(w, http.StatusUnauthorized, authFailed())
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

func authFailed() models.ErrorResponse {
	errs := models.FieldErrors{}
	errs.Add("username", "invalid_supplied_credentials", "Authentication failed with the supplied credentials", nil)
	return models.ErrorResponse{ErrorCode: "auth_failed", ErrorMessages: errs}
}

type claimsContextKey struct{}

func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// GetClaimsFromContext returns the session claims, or nil outside AuthMiddleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsContextKey{}).(*jwt.Claims)
	return claims
}
