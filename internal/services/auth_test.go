package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/sbilibin2017/gw-currency-convert/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	_ = logger.Initialize("error")
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockContactWriter(ctrl)
	svc := services.NewAuthService(services.NewMockContactReader(ctrl), mockWriter, services.NewMockTokenGenerator(ctrl), services.NewMockSessionRevoker(ctrl))

	t.Run("stores bcrypt hash", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "dev@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("key-1")))
				return nil
			})

		assert.NoError(t, svc.Register(context.Background(), "dev@example.com", "key-1"))
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), "dev@example.com", gomock.Any()).Return(errors.New("save error"))

		assert.EqualError(t, svc.Register(context.Background(), "dev@example.com", "key-1"), "save error")
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), bcrypt.MinCost)
	require.NoError(t, err)

	contact := &models.ContactDB{
		ContactID:  uuid.New(),
		AccountID:  uuid.New(),
		LoginID:    "dev@example.com",
		APIKeyHash: string(hash),
	}

	tests := []struct {
		name      string
		apiKey    string
		contact   *models.ContactDB
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			apiKey:    "secret-key",
			contact:   contact,
			wantToken: "token-123",
		},
		{
			name:    "unknown contact",
			apiKey:  "secret-key",
			wantErr: services.ErrContactNotFound,
		},
		{
			name:    "wrong api key",
			apiKey:  "other-key",
			contact: contact,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			apiKey:    "secret-key",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:    "jwt error",
			apiKey:  "secret-key",
			contact: contact,
			jwtErr:  errors.New("jwt error"),
			wantErr: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockContactReader(ctrl)
			mockJWT := services.NewMockTokenGenerator(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockContactWriter(ctrl), mockJWT, services.NewMockSessionRevoker(ctrl))

			mockReader.EXPECT().GetByLoginID(gomock.Any(), "dev@example.com").Return(tt.contact, tt.readerErr)
			if tt.wantToken != "" || tt.jwtErr != nil {
				mockJWT.EXPECT().Generate(gomock.Any(), contact).Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), "dev@example.com", tt.apiKey)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockSessionRevoker(ctrl)
	svc := services.NewAuthService(services.NewMockContactReader(ctrl), services.NewMockContactWriter(ctrl), services.NewMockTokenGenerator(ctrl), mockRevoker)

	expiresAt := time.Now().Add(10 * time.Minute)

	mockRevoker.EXPECT().
		Revoke(gomock.Any(), "jti-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
			assert.Greater(t, ttl, 9*time.Minute)
			assert.LessOrEqual(t, ttl, 10*time.Minute)
			return nil
		})
	assert.NoError(t, svc.Logout(context.Background(), "jti-1", expiresAt))

	mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-2", gomock.Any()).Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), "jti-2", expiresAt), "redis down")
}
