package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

const (
	authenticatePath      = "/v2/authenticate/api"
	closeSessionPath      = "/v2/authenticate/close_session"
	detailedRatesPath     = "/v2/rates/detailed"
	createConversionsPath = "/v2/conversions/create"

	authTokenHeader = "X-Auth-Token"
	requestIDHeader = "X-Request-Id"
	userAgent       = "gw-currency-convert/1.0"
	filteredValue   = "[FILTERED]"

	defaultTimeout = 30 * time.Second
)

var secretParams = map[string]bool{"api_key": true}

// CurrencyCloudHTTPFacade calls the Currencycloud v2 API over HTTP.
// It covers authentication, detailed rates and conversion creation; it keeps no
// session state, every authenticated call takes the session explicitly.
type CurrencyCloudHTTPFacade struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a CurrencyCloudHTTPFacade.
type Option func(*CurrencyCloudHTTPFacade)

// WithBaseURL overrides the environment base URL, e.g. to target a sandbox.
func WithBaseURL(baseURL string) Option {
	return func(f *CurrencyCloudHTTPFacade) {
		f.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every call.
func WithHTTPClient(client *http.Client) Option {
	return func(f *CurrencyCloudHTTPFacade) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithTimeout sets the per request timeout. The client passed to WithHTTPClient
// is left untouched; the facade works on a copy of it.
func WithTimeout(timeout time.Duration) Option {
	return func(f *CurrencyCloudHTTPFacade) {
		f.timeout = timeout
	}
}

// NewCurrencyCloudHTTPFacade creates a facade. Without WithBaseURL the base URL
// is taken from the environment of the credentials or session.
func NewCurrencyCloudHTTPFacade(opts ...Option) *CurrencyCloudHTTPFacade {
	f := &CurrencyCloudHTTPFacade{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout > 0 {
		client := *f.httpClient
		client.Timeout = f.timeout
		f.httpClient = &client
	}
	return f
}

func (f *CurrencyCloudHTTPFacade) endpoint(env models.Environment, path string) (string, error) {
	if f.baseURL != "" {
		return f.baseURL + path, nil
	}
	if env == "" {
		env = models.EnvironmentDemo
	}
	base := env.BaseURL()
	if base == "" {
		return "", fmt.Errorf("unknown environment %q", env)
	}
	return base + path, nil
}

// call performs one API request. Transport failures are wrapped with failKind;
// non-2xx responses are returned as *models.APIError.
func (f *CurrencyCloudHTTPFacade) call(
	ctx context.Context,
	method string,
	env models.Environment,
	path, token string,
	params url.Values,
	failKind error,
	out any,
) error {
	endpoint, err := f.endpoint(env, path)
	if err != nil {
		return fmt.Errorf("%w: %v", failKind, err)
	}

	reqURL := endpoint
	var body io.Reader
	if method == http.MethodGet {
		if len(params) > 0 {
			reqURL += "?" + params.Encode()
		}
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", failKind, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	logger.Log.Debugw("currencycloud request", "method", method, "url", endpoint, "params", redact(params))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("currencycloud request failed", "method", method, "url", endpoint, "error", err)
		return fmt.Errorf("%w: %s %s: %v", failKind, method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Log.Warnw("failed to close response body", "url", endpoint, "error", closeErr)
		}
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", failKind, err)
	}

	logger.Log.Debugw("currencycloud response",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"request_id", resp.Header.Get(requestIDHeader),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(resp, bodyBytes, method, endpoint, params)
		logger.Log.Errorw("currencycloud api error",
			"method", method,
			"url", endpoint,
			"status", apiErr.StatusCode,
			"error_code", apiErr.ErrorCode,
			"request_id", apiErr.RequestID,
		)
		return apiErr
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", models.ErrService, err)
	}
	return nil
}

func newAPIError(resp *http.Response, body []byte, method, endpoint string, params url.Values) *models.APIError {
	apiErr := &models.APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(requestIDHeader),
		Date:       resp.Header.Get("Date"),
		Verb:       strings.ToLower(method),
		URL:        endpoint,
		Parameters: redact(params),
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.ErrorCode = envelope.ErrorCode
		apiErr.Messages = envelope.ErrorMessages
	}
	if apiErr.ErrorCode == "" {
		apiErr.ErrorCode = strings.ToLower(strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "_"))
	}
	return apiErr
}

// redact flattens params for reporting, hiding secrets.
func redact(params url.Values) map[string]string {
	out := make(map[string]string, len(params))
	for key := range params {
		if secretParams[key] {
			out[key] = filteredValue
			continue
		}
		out[key] = params.Get(key)
	}
	return out
}
