package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepo(db)
	ctx := context.Background()

	// admin rows only ever come from the bootstrap seed
	_, err := db.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ('root', 'hash')`)
	require.NoError(t, err)

	a, err := repo.GetByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, "root", a.Username)
	assert.NotZero(t, a.ID)

	byID, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Username, byID.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
