package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	recipeListKey    = "recipes:list"
	recipeListGenKey = "recipes:list:gen"
)

// errStaleList aborts a Set whose list was read before the last invalidation.
var errStaleList = errors.New("recipe list changed while reading")

// RecipeListCache keeps the hydrated recipe list in Redis. It is best-effort:
// a nil client, an open breaker or any Redis error behaves like a miss.
//
// Every invalidation bumps a generation counter. Readers take the generation
// before querying the store and Set only stores the list when the counter has
// not moved, so a list read before a write never lands after it.
type RecipeListCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	breaker *infra.Breaker
}

func NewRecipeListCache(rdb *redis.Client, ttl time.Duration) *RecipeListCache {
	return &RecipeListCache{
		rdb:     rdb,
		ttl:     ttl,
		breaker: infra.NewBreaker(infra.BreakerConfig{Failures: 3, Cooldown: 30 * time.Second}),
	}
}

func (c *RecipeListCache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

func (c *RecipeListCache) Get(ctx context.Context) ([]dto.RecipeResponse, bool) {
	if !c.enabled() {
		return nil, false
	}
	var data []byte
	err := c.breaker.Do(func() error {
		var err error
		data, err = c.rdb.Get(ctx, recipeListKey).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	})
	if err != nil {
		c.warn(err, "read failed")
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	var list []dto.RecipeResponse
	if err := json.Unmarshal(data, &list); err != nil {
		log.Warn().Err(err).Msg("recipe cache: dropping malformed entry")
		c.Invalidate(ctx)
		return nil, false
	}
	return list, true
}

// Generation returns the current invalidation counter. ok is false when the
// cache is off or Redis cannot be read; the caller must then skip Set.
func (c *RecipeListCache) Generation(ctx context.Context) (gen int64, ok bool) {
	if !c.enabled() {
		return 0, false
	}
	err := c.breaker.Do(func() error {
		var err error
		gen, err = c.rdb.Get(ctx, recipeListGenKey).Int64()
		if errors.Is(err, redis.Nil) {
			gen, err = 0, nil
		}
		return err
	})
	if err != nil {
		c.warn(err, "generation read failed")
		return 0, false
	}
	return gen, true
}

// Set stores list if no invalidation happened since gen was read. The check
// and the write run in one WATCH/MULTI transaction on the counter.
func (c *RecipeListCache) Set(ctx context.Context, gen int64, list []dto.RecipeResponse) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		log.Warn().Err(err).Msg("recipe cache: marshal failed")
		return
	}
	err = c.breaker.Do(func() error {
		err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
			cur, err := tx.Get(ctx, recipeListGenKey).Int64()
			if errors.Is(err, redis.Nil) {
				cur, err = 0, nil
			}
			if err != nil {
				return err
			}
			if cur != gen {
				return errStaleList
			}
			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.Set(ctx, recipeListKey, data, c.ttl)
				return nil
			})
			return err
		}, recipeListGenKey)
		// A lost race is not a Redis failure; keep it away from the breaker.
		if errors.Is(err, errStaleList) || errors.Is(err, redis.TxFailedErr) {
			log.Debug().Int64("generation", gen).Msg("recipe cache: list changed while reading, not stored")
			return nil
		}
		return err
	})
	if err != nil {
		c.warn(err, "write failed")
	}
}

// Invalidate bumps the generation and drops the cached list. Called after
// every recipe write, partial ones included, and after ingredient changes
// that alter usage names. It bypasses the breaker.
func (c *RecipeListCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, recipeListGenKey)
		p.Del(ctx, recipeListKey)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("recipe cache: invalidate failed")
	}
}

func (c *RecipeListCache) warn(err error, msg string) {
	if errors.Is(err, infra.ErrBreakerOpen) {
		log.Debug().Msg("recipe cache: breaker open, skipping redis")
		return
	}
	log.Warn().Err(err).Str("breaker", c.breaker.State().String()).Msg("recipe cache: " + msg)
}
