package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// ConversionWriteRepository persists conversions, inside the request transaction when there is one.
type ConversionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewConversionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ConversionWriteRepository {
	return &ConversionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the conversion and fills its timestamps from the database.
func (r *ConversionWriteRepository) Save(ctx context.Context, c *models.ConversionDB) error {
	query := `
		INSERT INTO conversions (
			conversion_id, account_id, creator_contact_id, short_reference, status,
			buy_currency, sell_currency, fixed_side,
			client_buy_amount, client_sell_amount, client_rate, core_rate,
			reason, unique_request_id, conversion_date, settlement_date,
			created_at, updated_at
		)
		VALUES (
			:conversion_id, :account_id, :creator_contact_id, :short_reference, :status,
			:buy_currency, :sell_currency, :fixed_side,
			:client_buy_amount, :client_sell_amount, :client_rate, :core_rate,
			:reason, :unique_request_id, :conversion_date, :settlement_date,
			NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	bound, args, err := sqlx.Named(query, c)
	if err == nil {
		bound = executor.Rebind(bound)
		err = executor.QueryRowxContext(ctx, bound, args...).Scan(&c.CreatedAt, &c.UpdatedAt)
	}

	logger.Log.Infow(
		"save conversion",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{c.ConversionID, c.ShortReference, c.BuyCurrency, c.SellCurrency},
		"result", c.CreatedAt,
		"error", err,
	)

	return err
}
