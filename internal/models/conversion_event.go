package models

// Conversion event types
const (
	EventConversionCreated = "conversion.created"
)

// ConversionEvent is published to Kafka whenever a conversion is recorded.
type ConversionEvent struct {
	EventID          string `json:"event_id"`           // EventID is a unique identifier of the event.
	EventType        string `json:"event_type"`         // EventType is one of the Event* constants.
	Timestamp        int64  `json:"timestamp"`          // Timestamp is the Unix time (in seconds) the event was produced.
	ConversionID     string `json:"conversion_id"`      // ConversionID identifies the conversion.
	AccountID        string `json:"account_id"`         // AccountID identifies the owning account.
	CurrencyPair     string `json:"currency_pair"`      // CurrencyPair is buy currency followed by sell currency.
	ClientBuyAmount  string `json:"client_buy_amount"`  // ClientBuyAmount is a decimal string.
	ClientSellAmount string `json:"client_sell_amount"` // ClientSellAmount is a decimal string.
	ClientRate       string `json:"client_rate"`        // ClientRate is a decimal string.
}
