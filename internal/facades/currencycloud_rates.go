package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// GetQuote fetches a detailed rate for the request. Request values are sent as given.
func (f *CurrencyCloudHTTPFacade) GetQuote(ctx context.Context, session *models.Session, req models.QuoteRequest) (*models.QuoteResult, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: no session", models.ErrService)
	}

	var quote models.QuoteResult
	if err := f.call(ctx, http.MethodGet, session.Environment, detailedRatesPath, session.Token, req.Values(), models.ErrService, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
