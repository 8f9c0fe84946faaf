package models

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Error kinds of failed API calls. APIError unwraps to one of them.
var (
	ErrAuthentication  = errors.New("authentication failed")
	ErrRequest         = errors.New("bad request")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
	ErrService         = errors.New("service error")
)

// APIError is a structured failure returned by the remote API.
type APIError struct {
	StatusCode int               // HTTP status of the response
	ErrorCode  string            // error_code of the envelope
	Messages   FieldErrors       // error_messages of the envelope
	RequestID  string            // X-Request-Id response header
	Date       string            // Date response header
	Verb       string            // HTTP method of the request, lower case
	URL        string            // Request URL without query
	Parameters map[string]string // Request parameters, secrets redacted
}

// Kind names the error class by status code.
func (e *APIError) Kind() string {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return "BadRequestError"
	case e.StatusCode == http.StatusUnauthorized:
		return "AuthenticationError"
	case e.StatusCode == http.StatusForbidden:
		return "ForbiddenError"
	case e.StatusCode == http.StatusNotFound:
		return "NotFoundError"
	case e.StatusCode == http.StatusTooManyRequests:
		return "TooManyRequestsError"
	case e.StatusCode >= http.StatusInternalServerError:
		return "InternalApplicationError"
	default:
		return "UnexpectedError"
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %d, request_id %s)", e.Kind(), e.ErrorCode, e.StatusCode, e.RequestID)
}

// Unwrap maps the status code onto the error kinds so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrAuthentication
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrTooManyRequests
	default:
		return ErrService
	}
}

type apiErrorReport struct {
	Platform string               `yaml:"platform"`
	Request  apiErrorRequestPart  `yaml:"request"`
	Response apiErrorResponsePart `yaml:"response"`
	Errors   []apiErrorEntry      `yaml:"errors"`
}

type apiErrorRequestPart struct {
	Parameters map[string]string `yaml:"parameters"`
	Verb       string            `yaml:"verb"`
	URL        string            `yaml:"url"`
}

type apiErrorResponsePart struct {
	StatusCode int    `yaml:"status_code"`
	Date       string `yaml:"date"`
	RequestID  string `yaml:"request_id"`
}

type apiErrorEntry struct {
	Field   string         `yaml:"field"`
	Code    string         `yaml:"code"`
	Message string         `yaml:"message"`
	Params  map[string]any `yaml:"params"`
}

// ToYAML renders the error as a YAML report keyed by its kind.
func (e *APIError) ToYAML() string {
	report := apiErrorReport{
		Platform: runtime.Version(),
		Request: apiErrorRequestPart{
			Parameters: e.Parameters,
			Verb:       e.Verb,
			URL:        e.URL,
		},
		Response: apiErrorResponsePart{
			StatusCode: e.StatusCode,
			Date:       e.Date,
			RequestID:  e.RequestID,
		},
		Errors: []apiErrorEntry{},
	}
	if report.Request.Parameters == nil {
		report.Request.Parameters = map[string]string{}
	}

	for _, field := range e.Messages.Fields() {
		for _, fe := range e.Messages[field] {
			params := fe.Params
			if params == nil {
				params = map[string]any{}
			}
			report.Errors = append(report.Errors, apiErrorEntry{
				Field:   field,
				Code:    fe.Code,
				Message: fe.Message,
				Params:  params,
			})
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]apiErrorReport{e.Kind(): report}); err != nil {
		return e.Error()
	}
	if err := enc.Close(); err != nil {
		return e.Error()
	}
	return buf.String()
}
