package models

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places amounts are settled in.
const AmountPlaces = 2

// FixedSide tells which amount stays constant when a quote is computed.
type FixedSide string

// Fixed sides
const (
	FixedSideBuy  FixedSide = "buy"
	FixedSideSell FixedSide = "sell"
)

// Valid reports whether the fixed side is buy or sell.
func (s FixedSide) Valid() bool {
	return s == FixedSideBuy || s == FixedSideSell
}

// QuoteRequest asks for a detailed rate
// swagger:model QuoteRequest
type QuoteRequest struct {
	// Currency to buy
	// required: true
	// example: EUR
	BuyCurrency string `json:"buy_currency"`

	// Currency to sell
	// required: true
	// example: GBP
	SellCurrency string `json:"sell_currency"`

	// Amount of the fixed side currency
	// required: true
	// example: 10000
	Amount decimal.Decimal `json:"amount"`

	// Fixed side, buy or sell
	// required: true
	// example: buy
	FixedSide FixedSide `json:"fixed_side"`
}

// Values encodes the request as query or form parameters.
func (q QuoteRequest) Values() url.Values {
	v := url.Values{}
	v.Set("buy_currency", q.BuyCurrency)
	v.Set("sell_currency", q.SellCurrency)
	v.Set("amount", q.Amount.String())
	v.Set("fixed_side", string(q.FixedSide))
	return v
}

// QuoteRequestFromValues decodes query or form parameters. Parameters that cannot
// be decoded are reported as field errors; the rest is left for Validate.
func QuoteRequestFromValues(v url.Values) (QuoteRequest, FieldErrors) {
	errs := FieldErrors{}
	q := QuoteRequest{
		BuyCurrency:  v.Get("buy_currency"),
		SellCurrency: v.Get("sell_currency"),
		FixedSide:    FixedSide(v.Get("fixed_side")),
	}

	if raw := v.Get("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			errs.Add("amount", "amount_type_is_wrong", "amount should be of numeric type", map[string]any{"type": "numeric"})
		} else {
			q.Amount = amount
		}
	}

	return q, errs
}

// Validate checks the request the way the API does.
func (q QuoteRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	validateCurrency(errs, "buy_currency", q.BuyCurrency)
	validateCurrency(errs, "sell_currency", q.SellCurrency)

	if q.BuyCurrency != "" && q.BuyCurrency == q.SellCurrency {
		errs.Add("sell_currency", "currency_pair_not_available", "buy_currency and sell_currency must differ", nil)
	}

	switch {
	case q.Amount.IsZero():
		errs.Add("amount", "amount_is_required", "amount is required", nil)
	case q.Amount.IsNegative(), !q.Amount.Round(AmountPlaces).IsPositive():
		errs.Add("amount", "amount_is_too_small", "amount should be greater than 0", map[string]any{"minimum": 0})
	}

	switch {
	case q.FixedSide == "":
		errs.Add("fixed_side", "fixed_side_is_required", "fixed_side is required", nil)
	case !q.FixedSide.Valid():
		errs.Add("fixed_side", "fixed_side_not_in_range", "fixed_side should be in range: buy, sell", map[string]any{"range": "buy, sell"})
	}

	return errs
}

// QuoteResult is the detailed rate returned for a quote request
// swagger:model QuoteResult
type QuoteResult struct {
	SettlementCutOffTime time.Time           `json:"settlement_cut_off_time"`
	CurrencyPair         string              `json:"currency_pair" example:"EURGBP"`
	ClientBuyCurrency    string              `json:"client_buy_currency" example:"EUR"`
	ClientSellCurrency   string              `json:"client_sell_currency" example:"GBP"`
	ClientBuyAmount      decimal.Decimal     `json:"client_buy_amount" swaggertype:"string" example:"10000.00"`
	ClientSellAmount     decimal.Decimal     `json:"client_sell_amount" swaggertype:"string" example:"8710.00"`
	FixedSide            FixedSide           `json:"fixed_side" example:"buy"`
	ClientRate           decimal.Decimal     `json:"client_rate" swaggertype:"string" example:"1.1481"`
	PartnerRate          decimal.NullDecimal `json:"partner_rate" swaggertype:"string"`
	CoreRate             decimal.Decimal     `json:"core_rate" swaggertype:"string" example:"1.1539"`
	DepositRequired      bool                `json:"deposit_required"`
	DepositAmount        decimal.Decimal     `json:"deposit_amount" swaggertype:"string" example:"0.00"`
	DepositCurrency      string              `json:"deposit_currency" example:"GBP"`
	MidMarketRate        decimal.Decimal     `json:"mid_market_rate" swaggertype:"string" example:"1.1539"`
}
