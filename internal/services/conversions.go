package services

//go:generate mockgen -source=conversions.go -destination=conversions_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/segmentio/kafka-go"
)

// ConversionWriter persists conversions.
type ConversionWriter interface {
	Save(ctx context.Context, conversion *models.ConversionDB) error
}

// Quoter prices a conversion.
type Quoter interface {
	DetailedRate(ctx context.Context, req models.QuoteRequest) (*models.QuoteResult, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ConversionService books conversions at a fresh quote and publishes them.
type ConversionService struct {
	writer      ConversionWriter
	quoter      Quoter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

func NewConversionService(writer ConversionWriter, quoter Quoter, kafkaWriter KafkaWriter) *ConversionService {
	return &ConversionService{
		writer:      writer,
		quoter:      quoter,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Create validates the request, prices it and records the conversion for the contact.
func (s *ConversionService) Create(
	ctx context.Context,
	contactID, accountID uuid.UUID,
	req models.ConversionRequest,
	requestID string,
) (*models.ConversionResult, error) {
	if errs := req.Validate(); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	quote, err := s.quoter.DetailedRate(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	conversionDate := quote.SettlementCutOffTime.Add(-cutOffOffset)
	row := &models.ConversionDB{
		ConversionID:     id,
		AccountID:        accountID,
		CreatorContactID: contactID,
		ShortReference:   shortReference(s.now(), id),
		Status:           models.ConversionStatusAwaitingFunds,
		BuyCurrency:      quote.ClientBuyCurrency,
		SellCurrency:     quote.ClientSellCurrency,
		FixedSide:        string(quote.FixedSide),
		ClientBuyAmount:  quote.ClientBuyAmount,
		ClientSellAmount: quote.ClientSellAmount,
		ClientRate:       quote.ClientRate,
		CoreRate:         quote.CoreRate,
		Reason:           req.Reason,
		UniqueRequestID:  requestID,
		ConversionDate:   conversionDate,
		SettlementDate:   conversionDate,
	}

	if err := s.writer.Save(ctx, row); err != nil {
		logger.Log.Errorw("failed to save conversion", "conversion_id", id, "contact_id", contactID, "error", err)
		return nil, err
	}

	s.publishConversion(ctx, row)

	return row.Result(), nil
}

// shortReference renders YYYYMMDD-XXXXXX from the booking day and the conversion ID.
func shortReference(t time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:6]
	return t.UTC().Format("20060102") + "-" + suffix
}

// publishConversion publishes a conversion.created event. Failures are logged only.
func (s *ConversionService) publishConversion(ctx context.Context, c *models.ConversionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "conversion_id", c.ConversionID)
		return
	}

	event := models.ConversionEvent{
		EventID:          uuid.NewString(),
		EventType:        models.EventConversionCreated,
		Timestamp:        s.now().Unix(),
		ConversionID:     c.ConversionID.String(),
		AccountID:        c.AccountID.String(),
		CurrencyPair:     c.BuyCurrency + c.SellCurrency,
		ClientBuyAmount:  c.ClientBuyAmount.StringFixed(2),
		ClientSellAmount: c.ClientSellAmount.StringFixed(2),
		ClientRate:       c.ClientRate.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal conversion event for Kafka", "conversion_id", c.ConversionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ConversionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish conversion event to Kafka", "conversion_id", c.ConversionID, "error", err)
	} else {
		logger.Log.Infow("Conversion event published to Kafka", "conversion_id", c.ConversionID, "currency_pair", event.CurrencyPair)
	}
}
