package services

//go:generate mockgen -source=quote.go -destination=quote_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when no mid rate can be obtained for the pair.
var ErrRateUnavailable = errors.New("rate is not available")

// Rounding of quoted figures
const (
	ratePlaces = 4
	corePlaces = 6
)

// cutOffOffset is the time of day trading on the conversion date closes.
const cutOffOffset = 13*time.Hour + 30*time.Minute

// MidRateReader fetches live mid market rates.
type MidRateReader interface {
	GetMidRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error)
}

// MidRateCache caches mid market rates.
type MidRateCache interface {
	GetMidRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error)
	SetMidRate(ctx context.Context, sellCurrency, buyCurrency string, rate decimal.Decimal) error
}

// QuoteService prices conversions from the mid rate and a fixed spread.
type QuoteService struct {
	rates  MidRateReader
	cache  MidRateCache
	spread decimal.Decimal
	now    func() time.Time
}

func NewQuoteService(rates MidRateReader, cache MidRateCache, spread decimal.Decimal) *QuoteService {
	return &QuoteService{
		rates:  rates,
		cache:  cache,
		spread: spread,
		now:    time.Now,
	}
}

// DetailedRate validates the request and prices it.
func (s *QuoteService) DetailedRate(ctx context.Context, req models.QuoteRequest) (*models.QuoteResult, error) {
	if errs := req.Validate(); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}
	return s.quote(ctx, req)
}

func (s *QuoteService) quote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResult, error) {
	mid, err := s.midRate(ctx, req.SellCurrency, req.BuyCurrency)
	if err != nil {
		return nil, err
	}

	core := mid.Round(corePlaces)
	client := core.Mul(decimal.NewFromInt(1).Sub(s.spread)).Round(ratePlaces)
	if !client.IsPositive() {
		logger.Log.Errorw("spread leaves no client rate", "core_rate", core, "spread", s.spread)
		return nil, fmt.Errorf("%w: %s%s", ErrRateUnavailable, req.BuyCurrency, req.SellCurrency)
	}

	var buyAmount, sellAmount decimal.Decimal
	switch req.FixedSide {
	case models.FixedSideSell:
		sellAmount = req.Amount.Round(models.AmountPlaces)
		buyAmount = sellAmount.Mul(client).Round(models.AmountPlaces)
	default:
		buyAmount = req.Amount.Round(models.AmountPlaces)
		sellAmount = buyAmount.Div(client).Round(models.AmountPlaces)
	}

	conversionDate := nextBusinessDay(s.now())

	return &models.QuoteResult{
		SettlementCutOffTime: conversionDate.Add(cutOffOffset),
		CurrencyPair:         req.BuyCurrency + req.SellCurrency,
		ClientBuyCurrency:    req.BuyCurrency,
		ClientSellCurrency:   req.SellCurrency,
		ClientBuyAmount:      buyAmount,
		ClientSellAmount:     sellAmount,
		FixedSide:            req.FixedSide,
		ClientRate:           client,
		CoreRate:             core,
		DepositRequired:      false,
		DepositAmount:        decimal.Zero,
		DepositCurrency:      req.SellCurrency,
		MidMarketRate:        core,
	}, nil
}

// midRate reads the cache first and fills it from the exchanger on a miss.
func (s *QuoteService) midRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error) {
	rate, err := s.cache.GetMidRate(ctx, sellCurrency, buyCurrency)
	if err == nil {
		return rate, nil
	}

	rate, err = s.rates.GetMidRate(ctx, sellCurrency, buyCurrency)
	if err != nil {
		logger.Log.Errorw("failed to get mid rate", "from", sellCurrency, "to", buyCurrency, "error", err)
		return decimal.Zero, fmt.Errorf("%w: %s->%s: %v", ErrRateUnavailable, sellCurrency, buyCurrency, err)
	}

	if err := s.cache.SetMidRate(ctx, sellCurrency, buyCurrency, rate); err != nil {
		logger.Log.Errorw("failed to cache mid rate", "from", sellCurrency, "to", buyCurrency, "rate", rate, "error", err)
	}

	return rate, nil
}

// nextBusinessDay returns midnight UTC of the first weekday after t.
func nextBusinessDay(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
