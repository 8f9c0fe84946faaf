package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewContactReadRepository(db)
	writer := NewContactWriteRepository(db)

	t.Run("missing contact", func(t *testing.T) {
		contact, err := reader.GetByLoginID(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, contact)
	})

	t.Run("save and read", func(t *testing.T) {
		require.NoError(t, writer.Save(ctx, "alice@example.com", "hash-1"))

		contact, err := reader.GetByLoginID(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, contact)
		assert.Equal(t, "alice@example.com", contact.LoginID)
		assert.Equal(t, "hash-1", contact.APIKeyHash)
		assert.NotEqual(t, contact.ContactID, contact.AccountID)
	})

	t.Run("save again keeps ids and replaces hash", func(t *testing.T) {
		before, err := reader.GetByLoginID(ctx, "alice@example.com")
		require.NoError(t, err)

		require.NoError(t, writer.Save(ctx, "alice@example.com", "hash-2"))

		after, err := reader.GetByLoginID(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, before.ContactID, after.ContactID)
		assert.Equal(t, before.AccountID, after.AccountID)
		assert.Equal(t, "hash-2", after.APIKeyHash)
	})
}
