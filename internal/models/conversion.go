package models

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionRequest commits to the trade described by the quote fields
// swagger:model ConversionRequest
type ConversionRequest struct {
	QuoteRequest

	// Free text reason of the conversion
	// required: true
	// example: Top up Euros balance
	Reason string `json:"reason"`

	// Acknowledges the terms of the conversion
	// required: true
	// example: true
	TermAgreement bool `json:"term_agreement"`
}

// Values encodes the request as form parameters.
func (c ConversionRequest) Values() url.Values {
	v := c.QuoteRequest.Values()
	v.Set("reason", c.Reason)
	v.Set("term_agreement", strconv.FormatBool(c.TermAgreement))
	return v
}

// ConversionRequestFromValues decodes form parameters.
func ConversionRequestFromValues(v url.Values) (ConversionRequest, FieldErrors) {
	q, errs := QuoteRequestFromValues(v)
	c := ConversionRequest{
		QuoteRequest: q,
		Reason:       v.Get("reason"),
	}

	if raw := v.Get("term_agreement"); raw != "" {
		agreed, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add("term_agreement", "term_agreement_type_is_wrong", "term_agreement should be of boolean type", map[string]any{"type": "boolean"})
		} else {
			c.TermAgreement = agreed
		}
	}

	return c, errs
}

// Validate checks the quote fields plus the conversion specific ones.
func (c ConversionRequest) Validate() FieldErrors {
	errs := c.QuoteRequest.Validate()
	if c.Reason == "" {
		errs.Add("reason", "reason_is_required", "reason is required", nil)
	}
	if !c.TermAgreement {
		errs.Add("term_agreement", "term_agreement_is_required", "term_agreement is required", nil)
	}
	return errs
}

// Conversion statuses
const (
	ConversionStatusAwaitingFunds = "awaiting_funds"
	ConversionStatusTradeSettled  = "trade_settled"
	ConversionStatusClosed        = "closed"
)

// ConversionResult is a conversion as recorded against the account
// swagger:model ConversionResult
type ConversionResult struct {
	ID               uuid.UUID       `json:"id"`
	AccountID        uuid.UUID       `json:"account_id"`
	CreatorContactID uuid.UUID       `json:"creator_contact_id"`
	ShortReference   string          `json:"short_reference" example:"20231018-XKQWPL"`
	SettlementDate   time.Time       `json:"settlement_date"`
	ConversionDate   time.Time       `json:"conversion_date"`
	Status           string          `json:"status" example:"awaiting_funds"`
	CurrencyPair     string          `json:"currency_pair" example:"EURGBP"`
	BuyCurrency      string          `json:"buy_currency" example:"EUR"`
	SellCurrency     string          `json:"sell_currency" example:"GBP"`
	FixedSide        FixedSide       `json:"fixed_side" example:"buy"`
	ClientBuyAmount  decimal.Decimal `json:"client_buy_amount" swaggertype:"string" example:"10000.00"`
	ClientSellAmount decimal.Decimal `json:"client_sell_amount" swaggertype:"string" example:"8710.00"`
	ClientRate       decimal.Decimal `json:"client_rate" swaggertype:"string" example:"1.1481"`
	CoreRate         decimal.Decimal `json:"core_rate" swaggertype:"string" example:"1.1539"`
	MidMarketRate    decimal.Decimal `json:"mid_market_rate" swaggertype:"string" example:"1.1539"`
	DepositRequired  bool            `json:"deposit_required"`
	DepositAmount    decimal.Decimal `json:"deposit_amount" swaggertype:"string" example:"0.00"`
	DepositCurrency  string          `json:"deposit_currency" example:"GBP"`
	Reason           string          `json:"reason" example:"Top up Euros balance"`
	UniqueRequestID  string          `json:"unique_request_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
