package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// CreateConversion books a conversion against the account of the session.
func (f *CurrencyCloudHTTPFacade) CreateConversion(ctx context.Context, session *models.Session, req models.ConversionRequest) (*models.ConversionResult, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: no session", models.ErrService)
	}

	var conversion models.ConversionResult
	if err := f.call(ctx, http.MethodPost, session.Environment, createConversionsPath, session.Token, req.Values(), models.ErrService, &conversion); err != nil {
		return nil, err
	}
	return &conversion, nil
}
