package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

type ContactReadRepository struct {
	db *sqlx.DB
}

func NewContactReadRepository(db *sqlx.DB) *ContactReadRepository {
	return &ContactReadRepository{db: db}
}

// GetByLoginID returns nil without error when no contact has the login ID.
func (r *ContactReadRepository) GetByLoginID(ctx context.Context, loginID string) (*models.ContactDB, error) {
	const query = `
		SELECT contact_id, account_id, login_id, api_key_hash, created_at, updated_at
		FROM contacts
		WHERE login_id = $1
		LIMIT 1
	`

	var contact models.ContactDB
	err := r.db.GetContext(ctx, &contact, query, loginID)

	logger.Log.Infow(
		"get contact",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{loginID},
		"result", contact.ContactID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

type ContactWriteRepository struct {
	db *sqlx.DB
}

func NewContactWriteRepository(db *sqlx.DB) *ContactWriteRepository {
	return &ContactWriteRepository{db: db}
}

// Save creates the contact or replaces the API key hash of an existing one.
func (r *ContactWriteRepository) Save(ctx context.Context, loginID, apiKeyHash string) error {
	query := `
		INSERT INTO contacts (contact_id, account_id, login_id, api_key_hash, created_at, updated_at)
		VALUES (uuid_generate_v4(), uuid_generate_v4(), $1, $2, NOW(), NOW())
		ON CONFLICT (login_id) DO UPDATE
		SET api_key_hash = EXCLUDED.api_key_hash,
		    updated_at = NOW()
	`
	args := []any{loginID, apiKeyHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"save contact",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{loginID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
