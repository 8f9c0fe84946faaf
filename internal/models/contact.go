package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactDB represents an API contact record in the database
type ContactDB struct {
	ContactID  uuid.UUID `json:"contact_id" db:"contact_id"` // Primary key
	AccountID  uuid.UUID `json:"account_id" db:"account_id"` // Account the contact trades for
	LoginID    string    `json:"login_id" db:"login_id"`     // Unique login ID
	APIKeyHash string    `json:"-" db:"api_key_hash"`        // bcrypt hash of the API key
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
