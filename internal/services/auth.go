package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrContactNotFound    = errors.New("contact does not exist")
	ErrInvalidCredentials = errors.New("invalid login id or api key")
)

// ContactReader defines read-only operations for contacts.
type ContactReader interface {
	GetByLoginID(ctx context.Context, loginID string) (*models.ContactDB, error)
}

// ContactWriter defines write operations for contacts.
type ContactWriter interface {
	Save(ctx context.Context, loginID, apiKeyHash string) error
}

// TokenGenerator issues session tokens for a contact.
type TokenGenerator interface {
	Generate(ctx context.Context, contact *models.ContactDB) (string, error)
}

// SessionRevoker closes sessions by token ID.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles API key login and session close.
type AuthService struct {
	reader  ContactReader
	writer  ContactWriter
	jwt     TokenGenerator
	revoker SessionRevoker
	now     func() time.Time
}

func NewAuthService(reader ContactReader, writer ContactWriter, jwt TokenGenerator, revoker SessionRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
		now:     time.Now,
	}
}

// Register creates the contact or rotates its API key.
func (svc *AuthService) Register(ctx context.Context, loginID, apiKey string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash api key", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, loginID, string(hash)); err != nil {
		logger.Log.Errorw("failed to save contact", "login_id", loginID, "err", err)
		return err
	}

	return nil
}

// Login checks the API key of the contact and returns a session token.
func (svc *AuthService) Login(ctx context.Context, loginID, apiKey string) (string, error) {
	contact, err := svc.reader.GetByLoginID(ctx, loginID)
	if err != nil {
		logger.Log.Errorw("failed to get contact", "err", err)
		return "", err
	}
	if contact == nil {
		logger.Log.Errorw("contact does not exist", "login_id", loginID)
		return "", ErrContactNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(contact.APIKeyHash), []byte(apiKey)); err != nil {
		logger.Log.Errorw("invalid credentials", "login_id", loginID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, contact)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token until the moment it would have expired.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(svc.now())
	if err := svc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke session", "jti", tokenID, "err", err)
		return err
	}
	return nil
}
