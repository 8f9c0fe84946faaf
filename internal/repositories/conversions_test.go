package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversionRow(t *testing.T, contact *models.ContactDB, ref string) *models.ConversionDB {
	t.Helper()
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	return &models.ConversionDB{
		ConversionID:     uuid.New(),
		AccountID:        contact.AccountID,
		CreatorContactID: contact.ContactID,
		ShortReference:   ref,
		Status:           models.ConversionStatusAwaitingFunds,
		BuyCurrency:      "EUR",
		SellCurrency:     "GBP",
		FixedSide:        string(models.FixedSideBuy),
		ClientBuyAmount:  decimal.RequireFromString("10000.00"),
		ClientSellAmount: decimal.RequireFromString("8745.63"),
		ClientRate:       decimal.RequireFromString("1.1434"),
		CoreRate:         decimal.RequireFromString("1.149146"),
		Reason:           "Top up Euros balance",
		UniqueRequestID:  "req-1",
		ConversionDate:   day,
		SettlementDate:   day,
	}
}

func countConversions(t *testing.T, db *sqlx.DB) int {
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM conversions`))
	return n
}

func TestConversionWriteRepository_Save(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, NewContactWriteRepository(db).Save(ctx, "bob@example.com", "hash"))
	contact, err := NewContactReadRepository(db).GetByLoginID(ctx, "bob@example.com")
	require.NoError(t, err)

	t.Run("without transaction", func(t *testing.T) {
		repo := NewConversionWriteRepository(db, nil)
		row := newConversionRow(t, contact, "20261019-AAAAAA")

		require.NoError(t, repo.Save(ctx, row))
		assert.False(t, row.CreatedAt.IsZero())

		var stored models.ConversionDB
		require.NoError(t, db.Get(&stored, `SELECT * FROM conversions WHERE conversion_id = $1`, row.ConversionID))
		assert.True(t, stored.ClientSellAmount.Equal(row.ClientSellAmount))
		assert.True(t, stored.ClientRate.Equal(row.ClientRate))
		assert.Equal(t, "EUR", stored.BuyCurrency)
	})

	t.Run("rolled back transaction leaves nothing", func(t *testing.T) {
		before := countConversions(t, db)

		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		repo := NewConversionWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

		require.NoError(t, repo.Save(ctx, newConversionRow(t, contact, "20261019-BBBBBB")))
		require.NoError(t, tx.Rollback())

		assert.Equal(t, before, countConversions(t, db))
	})

	t.Run("duplicate short reference", func(t *testing.T) {
		repo := NewConversionWriteRepository(db, nil)
		assert.Error(t, repo.Save(ctx, newConversionRow(t, contact, "20261019-AAAAAA")))
	})
}
