package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// friday is a Friday afternoon, so the next business day is Monday 2026-10-19.
var friday = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func newTestQuoteService(t *testing.T) (*QuoteService, *MockMidRateReader, *MockMidRateCache) {
	t.Helper()
	require.NoError(t, logger.Initialize("error"))

	ctrl := gomock.NewController(t)
	rates := NewMockMidRateReader(ctrl)
	cache := NewMockMidRateCache(ctrl)

	svc := NewQuoteService(rates, cache, decimal.RequireFromString("0.005"))
	svc.now = func() time.Time { return friday }
	return svc, rates, cache
}

func quoteRequest(side models.FixedSide, amount string) models.QuoteRequest {
	return models.QuoteRequest{
		BuyCurrency:  "EUR",
		SellCurrency: "GBP",
		Amount:       decimal.RequireFromString(amount),
		FixedSide:    side,
	}
}

func TestQuoteService_DetailedRate_FixedBuy(t *testing.T) {
	svc, _, cache := newTestQuoteService(t)
	cache.EXPECT().GetMidRate(gomock.Any(), "GBP", "EUR").Return(decimal.RequireFromString("1.25"), nil)

	q, err := svc.DetailedRate(context.Background(), quoteRequest(models.FixedSideBuy, "10000"))
	require.NoError(t, err)

	assert.Equal(t, "EURGBP", q.CurrencyPair)
	assert.Equal(t, "EUR", q.ClientBuyCurrency)
	assert.Equal(t, "GBP", q.ClientSellCurrency)
	assert.Equal(t, "1.2438", q.ClientRate.String())
	assert.Equal(t, "1.25", q.CoreRate.String())
	assert.True(t, q.MidMarketRate.Equal(q.CoreRate))
	assert.Equal(t, "10000.00", q.ClientBuyAmount.StringFixed(2))
	assert.Equal(t, "8039.88", q.ClientSellAmount.StringFixed(2))
	assert.Equal(t, models.FixedSideBuy, q.FixedSide)
	assert.False(t, q.PartnerRate.Valid)
	assert.False(t, q.DepositRequired)
	assert.Equal(t, "GBP", q.DepositCurrency)
	assert.Equal(t, time.Date(2026, 10, 19, 13, 30, 0, 0, time.UTC), q.SettlementCutOffTime)
}

func TestQuoteService_DetailedRate_FixedSell(t *testing.T) {
	svc, _, cache := newTestQuoteService(t)
	cache.EXPECT().GetMidRate(gomock.Any(), "GBP", "EUR").Return(decimal.RequireFromString("1.25"), nil)

	q, err := svc.DetailedRate(context.Background(), quoteRequest(models.FixedSideSell, "1000"))
	require.NoError(t, err)

	assert.Equal(t, "1000.00", q.ClientSellAmount.StringFixed(2))
	assert.Equal(t, "1243.80", q.ClientBuyAmount.StringFixed(2))
}

func TestQuoteService_DetailedRate_CacheMiss(t *testing.T) {
	svc, rates, cache := newTestQuoteService(t)
	mid := decimal.RequireFromString("1.25")

	gomock.InOrder(
		cache.EXPECT().GetMidRate(gomock.Any(), "GBP", "EUR").Return(decimal.Zero, errors.New("miss")),
		rates.EXPECT().GetMidRate(gomock.Any(), "GBP", "EUR").Return(mid, nil),
		cache.EXPECT().SetMidRate(gomock.Any(), "GBP", "EUR", mid).Return(errors.New("redis down")),
	)

	q, err := svc.DetailedRate(context.Background(), quoteRequest(models.FixedSideBuy, "100"))
	require.NoError(t, err)
	assert.Equal(t, "1.25", q.CoreRate.String())
}

func TestQuoteService_DetailedRate_Unavailable(t *testing.T) {
	svc, rates, cache := newTestQuoteService(t)

	cache.EXPECT().GetMidRate(gomock.Any(), "GBP", "EUR").Return(decimal.Zero, errors.New("miss"))
	rates.EXPECT().GetMidRate(gomock.Any(), "GBP", "EUR").Return(decimal.Zero, errors.New("grpc unavailable"))

	_, err := svc.DetailedRate(context.Background(), quoteRequest(models.FixedSideBuy, "100"))
	assert.ErrorIs(t, err, ErrRateUnavailable)
}

func TestQuoteService_DetailedRate_Invalid(t *testing.T) {
	svc, _, _ := newTestQuoteService(t)

	req := quoteRequest("both", "100")
	req.BuyCurrency = "eur"

	_, err := svc.DetailedRate(context.Background(), req)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "buy_currency")
	assert.Contains(t, verr.Fields, "fixed_side")
}

func TestQuoteService_DetailedRate_SubCentAmount(t *testing.T) {
	svc, rates, cache := newTestQuoteService(t)
	cache.EXPECT().GetMidRate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	rates.EXPECT().GetMidRate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	q, err := svc.DetailedRate(context.Background(), quoteRequest(models.FixedSideBuy, "0.001"))
	assert.Nil(t, q)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "amount")
	assert.Equal(t, "amount_is_too_small", verr.Fields["amount"][0].Code)
}

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		from time.Time
		want time.Time
	}{
		{time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC), time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{friday, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC), time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC), time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextBusinessDay(tt.from), tt.from.String())
	}
}
