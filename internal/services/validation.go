package services

import (
	"strings"

	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// ValidationError rejects a request with per-field error codes.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Fields.Fields(), ", ")
}
