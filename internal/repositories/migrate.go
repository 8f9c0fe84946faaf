package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate applies the sandbox schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow(
		"apply schema",
		"query", "schema.sql",
		"error", err,
	)

	return err
}
