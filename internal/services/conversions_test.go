package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/sbilibin2017/gw-currency-convert/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conversionRequest() models.ConversionRequest {
	return models.ConversionRequest{
		QuoteRequest: models.QuoteRequest{
			BuyCurrency:  "EUR",
			SellCurrency: "GBP",
			Amount:       decimal.NewFromInt(10000),
			FixedSide:    models.FixedSideBuy,
		},
		Reason:        "Top up Euros balance",
		TermAgreement: true,
	}
}

func quoteResult() *models.QuoteResult {
	return &models.QuoteResult{
		SettlementCutOffTime: time.Date(2026, 10, 19, 13, 30, 0, 0, time.UTC),
		CurrencyPair:         "EURGBP",
		ClientBuyCurrency:    "EUR",
		ClientSellCurrency:   "GBP",
		ClientBuyAmount:      decimal.RequireFromString("10000.00"),
		ClientSellAmount:     decimal.RequireFromString("8039.88"),
		FixedSide:            models.FixedSideBuy,
		ClientRate:           decimal.RequireFromString("1.2438"),
		CoreRate:             decimal.RequireFromString("1.25"),
		DepositCurrency:      "GBP",
		MidMarketRate:        decimal.RequireFromString("1.25"),
	}
}

var shortRefPattern = regexp.MustCompile(`^\d{8}-[0-9A-F]{6}$`)

func TestConversionService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockConversionWriter(ctrl)
	mockQuoter := services.NewMockQuoter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewConversionService(mockWriter, mockQuoter, mockKafka)

	contactID, accountID := uuid.New(), uuid.New()
	req := conversionRequest()
	created := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

	var saved *models.ConversionDB
	gomock.InOrder(
		mockQuoter.EXPECT().DetailedRate(gomock.Any(), req.QuoteRequest).Return(quoteResult(), nil),
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.ConversionDB) error {
			saved = c
			c.CreatedAt, c.UpdatedAt = created, created
			return nil
		}),
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			var event models.ConversionEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.EventConversionCreated, event.EventType)
			assert.Equal(t, saved.ConversionID.String(), event.ConversionID)
			assert.Equal(t, string(msgs[0].Key), event.ConversionID)
			assert.Equal(t, accountID.String(), event.AccountID)
			assert.Equal(t, "EURGBP", event.CurrencyPair)
			assert.Equal(t, "10000.00", event.ClientBuyAmount)
			assert.Equal(t, "8039.88", event.ClientSellAmount)
			return nil
		}),
	)

	res, err := svc.Create(context.Background(), contactID, accountID, req, "req-42")
	require.NoError(t, err)

	assert.Equal(t, saved.ConversionID, res.ID)
	assert.Equal(t, accountID, res.AccountID)
	assert.Equal(t, contactID, res.CreatorContactID)
	assert.Equal(t, models.ConversionStatusAwaitingFunds, res.Status)
	assert.Equal(t, "EURGBP", res.CurrencyPair)
	assert.Equal(t, "Top up Euros balance", res.Reason)
	assert.Equal(t, "req-42", res.UniqueRequestID)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), res.ConversionDate)
	assert.Equal(t, res.ConversionDate, res.SettlementDate)
	assert.Equal(t, created, res.CreatedAt)
	assert.Regexp(t, shortRefPattern, res.ShortReference)
}

func TestConversionService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewConversionService(services.NewMockConversionWriter(ctrl), services.NewMockQuoter(ctrl), nil)

	req := conversionRequest()
	req.TermAgreement = false
	req.Reason = ""

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), req, "")

	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "term_agreement_is_required", verr.Fields["term_agreement"][0].Code)
	assert.Equal(t, "reason_is_required", verr.Fields["reason"][0].Code)
}

func TestConversionService_Create_Failures(t *testing.T) {
	t.Run("quote fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQuoter := services.NewMockQuoter(ctrl)
		svc := services.NewConversionService(services.NewMockConversionWriter(ctrl), mockQuoter, services.NewMockKafkaWriter(ctrl))

		mockQuoter.EXPECT().DetailedRate(gomock.Any(), gomock.Any()).Return(nil, services.ErrRateUnavailable)

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), conversionRequest(), "")
		assert.ErrorIs(t, err, services.ErrRateUnavailable)
	})

	t.Run("save fails, nothing published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockWriter := services.NewMockConversionWriter(ctrl)
		mockQuoter := services.NewMockQuoter(ctrl)
		svc := services.NewConversionService(mockWriter, mockQuoter, services.NewMockKafkaWriter(ctrl))

		mockQuoter.EXPECT().DetailedRate(gomock.Any(), gomock.Any()).Return(quoteResult(), nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), conversionRequest(), "")
		assert.EqualError(t, err, "db error")
	})

	t.Run("publish failure does not fail the conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockWriter := services.NewMockConversionWriter(ctrl)
		mockQuoter := services.NewMockQuoter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewConversionService(mockWriter, mockQuoter, mockKafka)

		mockQuoter.EXPECT().DetailedRate(gomock.Any(), gomock.Any()).Return(quoteResult(), nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := svc.Create(context.Background(), uuid.New(), uuid.New(), conversionRequest(), "")
		assert.NoError(t, err)
		assert.NotNil(t, res)
	})

	t.Run("no kafka writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockWriter := services.NewMockConversionWriter(ctrl)
		mockQuoter := services.NewMockQuoter(ctrl)
		svc := services.NewConversionService(mockWriter, mockQuoter, nil)

		mockQuoter.EXPECT().DetailedRate(gomock.Any(), gomock.Any()).Return(quoteResult(), nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), conversionRequest(), "")
		assert.NoError(t, err)
	})
}
