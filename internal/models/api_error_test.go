package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAPIError_KindAndUnwrap(t *testing.T) {
	tests := []struct {
		status   int
		wantKind string
		wantErr  error
	}{
		{http.StatusBadRequest, "BadRequestError", ErrRequest},
		{http.StatusUnauthorized, "AuthenticationError", ErrAuthentication},
		{http.StatusForbidden, "ForbiddenError", ErrForbidden},
		{http.StatusNotFound, "NotFoundError", ErrNotFound},
		{http.StatusTooManyRequests, "TooManyRequestsError", ErrTooManyRequests},
		{http.StatusInternalServerError, "InternalApplicationError", ErrService},
		{http.StatusBadGateway, "InternalApplicationError", ErrService},
		{http.StatusConflict, "UnexpectedError", ErrService},
	}

	for _, tt := range tests {
		t.Run(tt.wantKind, func(t *testing.T) {
			apiErr := &APIError{StatusCode: tt.status, ErrorCode: "some_code"}
			assert.Equal(t, tt.wantKind, apiErr.Kind())
			assert.ErrorIs(t, apiErr, tt.wantErr)

			wrapped := fmt.Errorf("get quote: %w", apiErr)
			var target *APIError
			require.True(t, errors.As(wrapped, &target))
			assert.Same(t, apiErr, target)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	apiErr := &APIError{StatusCode: 401, ErrorCode: "auth_failed", RequestID: "req-1"}
	assert.Equal(t, "AuthenticationError: auth_failed (status 401, request_id req-1)", apiErr.Error())
}

func TestAPIError_ToYAML(t *testing.T) {
	messages := FieldErrors{}
	messages.Add("sell_currency", "sell_currency_is_in_invalid_format", "sell_currency is not a valid ISO 4217 currency code", map[string]any{"type": "currency"})
	messages.Add("amount", "amount_is_required", "amount is required", nil)

	apiErr := &APIError{
		StatusCode: 400,
		ErrorCode:  "rate_invalid",
		Messages:   messages,
		RequestID:  "2775253392756800903",
		Date:       "Wed, 18 Oct 2026 10:00:00 GMT",
		Verb:       "get",
		URL:        "https://devapi.currencycloud.com/v2/rates/detailed",
		Parameters: map[string]string{"buy_currency": "EUR", "sell_currency": "GB"},
	}

	out := apiErr.ToYAML()
	assert.True(t, strings.HasPrefix(out, "BadRequestError:\n  platform: go"), out)

	var decoded map[string]struct {
		Platform string `yaml:"platform"`
		Request  struct {
			Parameters map[string]string `yaml:"parameters"`
			Verb       string            `yaml:"verb"`
			URL        string            `yaml:"url"`
		} `yaml:"request"`
		Response struct {
			StatusCode int    `yaml:"status_code"`
			Date       string `yaml:"date"`
			RequestID  string `yaml:"request_id"`
		} `yaml:"response"`
		Errors []struct {
			Field   string         `yaml:"field"`
			Code    string         `yaml:"code"`
			Message string         `yaml:"message"`
			Params  map[string]any `yaml:"params"`
		} `yaml:"errors"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	report, ok := decoded["BadRequestError"]
	require.True(t, ok)
	assert.Equal(t, "get", report.Request.Verb)
	assert.Equal(t, "https://devapi.currencycloud.com/v2/rates/detailed", report.Request.URL)
	assert.Equal(t, "GB", report.Request.Parameters["sell_currency"])
	assert.Equal(t, 400, report.Response.StatusCode)
	assert.Equal(t, "2775253392756800903", report.Response.RequestID)

	require.Len(t, report.Errors, 2)
	// fields are rendered in sorted order
	assert.Equal(t, "amount", report.Errors[0].Field)
	assert.Equal(t, "amount_is_required", report.Errors[0].Code)
	assert.Empty(t, report.Errors[0].Params)
	assert.Equal(t, "sell_currency", report.Errors[1].Field)
	assert.Equal(t, "currency", report.Errors[1].Params["type"])
}

func TestAPIError_ToYAML_NoMessages(t *testing.T) {
	apiErr := &APIError{StatusCode: 500, ErrorCode: "internal_application_error"}

	out := apiErr.ToYAML()
	assert.Contains(t, out, "InternalApplicationError:")
	assert.Contains(t, out, "status_code: 500")
	assert.Contains(t, out, "errors: []")
}
