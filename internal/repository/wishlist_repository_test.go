package repository

import (
	"context"
	"testing"

	"storefront/internal/database/dbtest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository(t *testing.T) {
	client := dbtest.SetupRedis(t)
	repo := NewWishlistRepository(client, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "user-1", "P003"))
	require.NoError(t, repo.Add(ctx, "user-1", "P001"))
	require.NoError(t, repo.Add(ctx, "user-1", "P003"))
	require.NoError(t, repo.Add(ctx, "user-2", "P006"))

	ids, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"P001", "P003"}, ids)

	removed, err := repo.Remove(ctx, "user-1", "P003")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, "user-1", "P404")
	require.NoError(t, err)
	assert.False(t, removed)

	ids, err = repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"P001"}, ids)
}
