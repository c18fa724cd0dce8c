package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/airline-backoffice/internal/model"
)

func TestPromotionCreateAndGet(t *testing.T) {
	repo := NewPromotionRepo(newTestDB(t))
	ctx := context.Background()

	p := &model.Promotion{Code: "SPRING15", Discount: 15, ExpirationDate: "2030-03-31"}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := repo.GetByCode(ctx, "SPRING15")
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.Discount)
	assert.Equal(t, "2030-03-31", got.ExpirationDate)

	dup := &model.Promotion{Code: "SPRING15", Discount: 20, ExpirationDate: "2030-04-30"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrPromoCodeExists)

	_, err = repo.GetByCode(ctx, "MISSING")
	assert.ErrorIs(t, err, ErrPromoNotFound)
}

func TestPromotionListIncludesExpired(t *testing.T) {
	repo := NewPromotionRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Promotion{Code: "OLD", Discount: 5, ExpirationDate: "2020-01-01"}))
	require.NoError(t, repo.Create(ctx, &model.Promotion{Code: "NEW", Discount: 10, ExpirationDate: "2030-01-01"}))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// ordered by id; expiry is the redemption flow's problem
	assert.Equal(t, "OLD", items[0].Code)
	assert.Equal(t, "NEW", items[1].Code)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
