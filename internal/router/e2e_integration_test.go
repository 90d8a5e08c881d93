//go:build integration

package router

// End-to-end tests against real PostgreSQL and Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/config"
	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/infra"
	"github.com/uiliamvenerio/salada-landing/internal/writelog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"
)

type e2eEnv struct {
	engine *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
}

func setupE2E(t *testing.T) *e2eEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("salada_test"),
		tcPostgres.WithUsername("salada"),
		tcPostgres.WithPassword("salada"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pgC) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(rdC) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                "test",
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		RateLimitPerMinute: 10000,
		RecipeCacheTTL:     time.Minute,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	// A second run must be a no-op.
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	gin.SetMode(gin.TestMode)
	runCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	return &e2eEnv{engine: New(runCtx, cfg, db, rdb), db: db, rdb: rdb}
}

func TestE2E_RecipeLifecycle(t *testing.T) {
	env := setupE2E(t)
	ctx := context.Background()

	var health map[string]any
	require.Equal(t, http.StatusOK, call(t, env.engine, http.MethodGet, "/health", "", &health))
	assert.Equal(t, "connected", health["redis"])

	var ing dto.IngredientResponse
	require.Equal(t, http.StatusCreated, call(t, env.engine, http.MethodPost, "/v1/ingredients",
		`{"table_of_origin":"TACO","food_number":"45","description":"Farinha de trigo","category":"Cereais"}`, &ing))

	var header dto.RecipeHeaderResponse
	require.Equal(t, http.StatusCreated, call(t, env.engine, http.MethodPost, "/v1/recipes", `{
		"name": "Bolo", "category": "Sobremesa", "cookingIndex": "1.2", "tags": ["doce"],
		"ingredients": [{"ingredient_id": "`+ing.ID+`", "quantity": 200}],
		"preparationSteps": [{"description": "Misturar"}, {"description": "Assar"}]
	}`, &header))

	var list []dto.RecipeResponse
	require.Equal(t, http.StatusOK, call(t, env.engine, http.MethodGet, "/v1/recipes", "", &list))
	require.Len(t, list, 1)
	assert.Equal(t, []string{"doce"}, list[0].Tags)

	n, err := env.rdb.Exists(ctx, "recipes:list").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "list is cached")

	require.Equal(t, http.StatusOK, call(t, env.engine, http.MethodPut, "/v1/recipes/"+header.ID,
		`{"preparationSteps": [{"description": "Bater"}]}`, nil))
	n, err = env.rdb.Exists(ctx, "recipes:list").Result()
	require.NoError(t, err)
	assert.Zero(t, n, "writes invalidate the cache")

	require.Equal(t, http.StatusOK, call(t, env.engine, http.MethodGet, "/v1/recipes", "", &list))
	require.Len(t, list[0].PreparationSteps, 1)
	assert.Equal(t, "Bater", list[0].PreparationSteps[0].Description)
	require.Len(t, list[0].Ingredients, 1)
}

func TestE2E_CascadeConstraint(t *testing.T) {
	env := setupE2E(t)

	var header dto.RecipeHeaderResponse
	require.Equal(t, http.StatusCreated, call(t, env.engine, http.MethodPost, "/v1/recipes", `{
		"name": "Sopa", "category": "Sopa",
		"ingredients": [{"quantity": 1}],
		"steps": [{"description": "Ferver"}]
	}`, &header))

	// Rows removed outside the service still take their children along.
	require.NoError(t, env.db.Exec("DELETE FROM recipes WHERE id = ?", header.ID).Error)

	var count int64
	require.NoError(t, env.db.Table("recipe_ingredients").Where("recipe_id = ?", header.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, env.db.Table("preparation_steps").Where("recipe_id = ?", header.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestE2E_Ledger(t *testing.T) {
	env := setupE2E(t)
	ctx := context.Background()
	l := writelog.New(env.rdb)

	l.Record(ctx, "a", "steps.insert", assert.AnError)
	time.Sleep(10 * time.Millisecond)
	l.Record(ctx, "b", "ingredients.insert", assert.AnError)

	var entries []dto.IncompleteWriteResponse
	require.Equal(t, http.StatusOK, call(t, env.engine, http.MethodGet, "/v1/recipes/incomplete", "", &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].RecipeID, "most recent first")

	l.Clear(ctx, "a")
	n, err := l.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
