package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/airline-backoffice/internal/utils"
)

func TestUserCreateAndAuthenticate(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, "walter", "secret99", " Walter@Example.COM ", 4)
	require.NoError(t, err)
	require.NotZero(t, id)

	u, err := repo.GetByUsername(ctx, "walter")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "walter@example.com", u.Email) // normalized on insert
	assert.Equal(t, "user", u.Role)                // column default
	assert.NotEqual(t, "secret99", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "secret99"))

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "walter", byID.Username)
}

func TestUserCreateConflicts(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "xena", "pw", "xena@example.com", 4)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "xena", "pw", "fresh@example.com", 4)
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = repo.Create(ctx, "yuri", "pw", "xena@example.com", 4)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserNotFound(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
