package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionDB represents a conversion row in the database
type ConversionDB struct {
	ConversionID     uuid.UUID       `db:"conversion_id"`      // Primary key
	AccountID        uuid.UUID       `db:"account_id"`         // Owning account
	CreatorContactID uuid.UUID       `db:"creator_contact_id"` // Contact that created the conversion
	ShortReference   string          `db:"short_reference"`    // Human friendly reference
	Status           string          `db:"status"`             // Conversion status
	BuyCurrency      string          `db:"buy_currency"`       // Currency bought
	SellCurrency     string          `db:"sell_currency"`      // Currency sold
	FixedSide        string          `db:"fixed_side"`         // buy or sell
	ClientBuyAmount  decimal.Decimal `db:"client_buy_amount"`  // Amount bought
	ClientSellAmount decimal.Decimal `db:"client_sell_amount"` // Amount sold
	ClientRate       decimal.Decimal `db:"client_rate"`        // Rate applied to the client
	CoreRate         decimal.Decimal `db:"core_rate"`          // Rate before spread
	Reason           string          `db:"reason"`             // Free text reason
	UniqueRequestID  string          `db:"unique_request_id"`  // Request ID the conversion was created by
	ConversionDate   time.Time       `db:"conversion_date"`    // Trade date
	SettlementDate   time.Time       `db:"settlement_date"`    // Settlement date
	CreatedAt        time.Time       `db:"created_at"`         // Creation timestamp
	UpdatedAt        time.Time       `db:"updated_at"`         // Last update timestamp
}

// Result converts the row into its API representation.
func (c ConversionDB) Result() *ConversionResult {
	return &ConversionResult{
		ID:               c.ConversionID,
		AccountID:        c.AccountID,
		CreatorContactID: c.CreatorContactID,
		ShortReference:   c.ShortReference,
		SettlementDate:   c.SettlementDate,
		ConversionDate:   c.ConversionDate,
		Status:           c.Status,
		CurrencyPair:     c.BuyCurrency + c.SellCurrency,
		BuyCurrency:      c.BuyCurrency,
		SellCurrency:     c.SellCurrency,
		FixedSide:        FixedSide(c.FixedSide),
		ClientBuyAmount:  c.ClientBuyAmount,
		ClientSellAmount: c.ClientSellAmount,
		ClientRate:       c.ClientRate,
		CoreRate:         c.CoreRate,
		MidMarketRate:    c.CoreRate,
		DepositRequired:  false,
		DepositAmount:    decimal.Zero,
		DepositCurrency:  c.SellCurrency,
		Reason:           c.Reason,
		UniqueRequestID:  c.UniqueRequestID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
