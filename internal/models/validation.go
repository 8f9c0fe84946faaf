package models

import (
	"regexp"
	"sort"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// FieldError is a single validation failure of a request parameter
// swagger:model FieldError
type FieldError struct {
	// Machine readable code
	// example: buy_currency_is_in_invalid_format
	Code string `json:"code" yaml:"code"`

	// Human readable message
	// example: buy_currency is not a valid ISO 4217 currency code
	Message string `json:"message" yaml:"message"`

	// Extra parameters of the failure
	Params map[string]any `json:"params" yaml:"params"`
}

// FieldErrors groups validation failures by parameter name.
type FieldErrors map[string][]FieldError

// Add appends a failure for field.
func (e FieldErrors) Add(field, code, message string, params map[string]any) {
	if params == nil {
		params = map[string]any{}
	}
	e[field] = append(e[field], FieldError{Code: code, Message: message, Params: params})
}

// Fields returns the failing field names in sorted order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Empty reports whether there are no failures.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func validateCurrency(errs FieldErrors, field, value string) {
	switch {
	case value == "":
		errs.Add(field, field+"_is_required", field+" is required", nil)
	case !currencyCodeRe.MatchString(value):
		errs.Add(field, field+"_is_in_invalid_format", field+" is not a valid ISO 4217 currency code", map[string]any{"type": "currency"})
	}
}

// ErrorResponse is the error envelope of the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error code
	// example: rate_invalid
	ErrorCode string `json:"error_code"`

	// Failures by parameter name
	ErrorMessages FieldErrors `json:"error_messages"`
}
