//go:build integration

package service

// Recipe list cache against a real Redis via testcontainers.
// Run with: go test -tags integration ./internal/service/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisCache(t *testing.T) *RecipeListCache {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(rdC) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRecipeListCache(rdb, time.Minute)
}

func TestRecipeListCache_SetAfterInvalidateIsDropped(t *testing.T) {
	c := newRedisCache(t)
	ctx := context.Background()

	gen, ok := c.Generation(ctx)
	require.True(t, ok)
	assert.Zero(t, gen)

	// A write lands between the store read and Set.
	c.Invalidate(ctx)
	c.Set(ctx, gen, []dto.RecipeResponse{{RecipeHeaderResponse: dto.RecipeHeaderResponse{Name: "antiga"}}})

	_, hit := c.Get(ctx)
	assert.False(t, hit, "a list read before the invalidation must not be stored")

	gen, ok = c.Generation(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(1), gen)

	c.Set(ctx, gen, []dto.RecipeResponse{{RecipeHeaderResponse: dto.RecipeHeaderResponse{Name: "nova"}}})
	list, hit := c.Get(ctx)
	require.True(t, hit)
	require.Len(t, list, 1)
	assert.Equal(t, "nova", list[0].Name)
}
