package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// AuthTokenHeader carries the auth token of API calls.
const AuthTokenHeader = "X-Auth-Token"

// Claims are the claims of an auth token. RegisteredClaims.ID identifies the
// token so it can be revoked on logout.
type Claims struct {
	ContactID uuid.UUID `json:"contact_id"`
	AccountID uuid.UUID `json:"account_id"`
	LoginID   string    `json:"login_id"`
	jwt.RegisteredClaims
}

// JWT issues and checks auth tokens.
type JWT struct {
	secretKey string        // Secret key for signing tokens
	exp       time.Duration // Token expiration duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(secretKey string) Opt {
	return func(j *JWT) {
		j.secretKey = secretKey
	}
}

// WithExpiration sets how long issued tokens stay valid.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a new JWT instance. Tokens expire after 30 minutes by default.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: 30 * time.Minute}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token for the contact.
func (j *JWT) Generate(ctx context.Context, contact *models.ContactDB) (string, error) {
	now := time.Now()
	claims := Claims{
		ContactID: contact.ContactID,
		AccountID: contact.AccountID,
		LoginID:   contact.LoginID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   contact.ContactID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and verifies the token, returning its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" || claims.ContactID == uuid.Nil {
		return nil, errors.New("token is missing required claims")
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token from the X-Auth-Token header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	token := strings.TrimSpace(r.Header.Get(AuthTokenHeader))
	if token == "" {
		return "", errors.New("auth token header missing")
	}
	if strings.ContainsAny(token, " \t") {
		return "", errors.New("invalid auth token header format")
	}
	return token, nil
}
