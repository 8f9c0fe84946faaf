package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	golangjwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-convert/internal/jwt"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	require.NoError(t, logger.Initialize("error"))

	claims := &jwt.Claims{
		ContactID:        uuid.New(),
		AccountID:        uuid.New(),
		LoginID:          "dev@example.com",
		RegisteredClaims: golangjwt.RegisteredClaims{ID: "jti-1"},
	}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener, r *MockRevocationChecker)
		expectedStatus   int
		expectedCode     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener, r *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "auth_failed",
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener, r *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "auth_failed",
		},
		{
			name: "ClosedSession",
			mockSetup: func(m *MockTokener, r *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				r.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "auth_failed",
		},
		{
			name: "DenylistUnavailable",
			mockSetup: func(m *MockTokener, r *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				r.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_application_error",
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener, r *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				r.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockTokener(ctrl)
			mockRevocations := NewMockRevocationChecker(ctrl)
			tt.mockSetup(mockTokener, mockRevocations)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, claims, GetClaimsFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockRevocations)(nextHandler)

			req := httptest.NewRequest(http.MethodPost, "/v2/authenticate/close_session", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedCode != "" {
				var resp models.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.ErrorCode)
				assert.NotEmpty(t, resp.ErrorMessages)
			}
		})
	}
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaimsFromContext(req.Context()))
}
