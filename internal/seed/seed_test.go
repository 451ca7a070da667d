package seed

import (
	"context"
	"testing"
	"time"

	"github.com/grocodev/groco/internal/catalog/repository"
	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeedsEightArticlesInOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)

	require.NoError(t, Catalog(ctx, repo, now))

	all := repo.List(ctx)
	require.Len(t, all, 8)
	for i, want := range []string{"A001", "A002", "A003", "A004", "A005", "A006", "A007", "A008"} {
		assert.Equal(t, want, all[i].ID)
	}
}

func TestCatalogSeedValues(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	require.NoError(t, Catalog(ctx, repo, now))

	lait, err := repo.Get(ctx, "A001")
	require.NoError(t, err)
	assert.Equal(t, model.KindPerishable, lait.Kind)
	assert.Equal(t, "Lait demi-écrémé 1L", lait.Name)
	assert.Equal(t, "Produits laitiers", lait.Category)
	assert.True(t, lait.Price.Equal(decimal.RequireFromString("1.50")))
	assert.Equal(t, 5, lait.Stock)
	assert.True(t, lait.Expiry.Equal(now.AddDate(0, 0, 5)))
	assert.Equal(t, 5, lait.DaysRemainingAt(now))
	assert.False(t, lait.ExpiredAt(now))

	pates, err := repo.Get(ctx, "A003")
	require.NoError(t, err)
	assert.Equal(t, model.KindNonPerishable, pates.Kind)
	assert.Equal(t, 365, pates.ShelfLifeDays)
	assert.True(t, pates.Expiry.IsZero())
	assert.False(t, pates.ExpiredAt(now))
}

func TestCatalogSeedIsNotRepeatable(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	now := time.Now()

	require.NoError(t, Catalog(ctx, repo, now))
	assert.Error(t, Catalog(ctx, repo, now))
	assert.Len(t, repo.List(ctx), 8)
}
