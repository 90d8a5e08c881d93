// Package writelog records recipe writes that stopped half way.
//
// The recipe writer issues independent statements, so a failure after the
// header write leaves the aggregate out of sync with what the caller sent.
// Each such recipe gets one entry in the Redis hash recipes:incomplete
// (field = recipe id) until a later write of the same recipe succeeds.
// Entries are for inspection only; nothing here repairs data.
package writelog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const Key = "recipes:incomplete"

// Entry describes the last failed write of one recipe.
type Entry struct {
	RecipeID string    `json:"recipe_id"`
	Stage    string    `json:"stage"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}

// Ledger is safe to use with a nil client: every call becomes a no-op.
type Ledger struct {
	rdb *redis.Client
	now func() time.Time
}

func New(rdb *redis.Client) *Ledger {
	return &Ledger{rdb: rdb, now: time.Now}
}

// Record stores (or overwrites) the entry for recipeID. Redis errors are
// logged, never returned: the write error itself is already on its way to
// the caller.
func (l *Ledger) Record(ctx context.Context, recipeID, stage string, cause error) {
	if l == nil || l.rdb == nil {
		return
	}
	entry := Entry{
		RecipeID: recipeID,
		Stage:    stage,
		FailedAt: l.now().UTC(),
	}
	if cause != nil {
		entry.Reason = cause.Error()
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("recipe_id", recipeID).Msg("writelog: failed to marshal entry")
		return
	}
	if err := l.rdb.HSet(ctx, Key, recipeID, data).Err(); err != nil {
		log.Error().Err(err).Str("recipe_id", recipeID).Msg("writelog: failed to record entry")
		return
	}
	log.Warn().
		Str("recipe_id", recipeID).
		Str("stage", stage).
		Str("reason", entry.Reason).
		Msg("writelog: recipe left incomplete")
}

// Clear drops the entry for recipeID, if any.
func (l *Ledger) Clear(ctx context.Context, recipeID string) {
	if l == nil || l.rdb == nil {
		return
	}
	if err := l.rdb.HDel(ctx, Key, recipeID).Err(); err != nil {
		log.Error().Err(err).Str("recipe_id", recipeID).Msg("writelog: failed to clear entry")
	}
}

// List returns all entries, most recent failure first.
func (l *Ledger) List(ctx context.Context) ([]Entry, error) {
	entries := []Entry{}
	if l == nil || l.rdb == nil {
		return entries, nil
	}
	raw, err := l.rdb.HGetAll(ctx, Key).Result()
	if err != nil {
		return nil, fmt.Errorf("writelog: read %s: %w", Key, err)
	}
	for id, v := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			log.Warn().Err(err).Str("recipe_id", id).Msg("writelog: skipping malformed entry")
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FailedAt.After(entries[j].FailedAt)
	})
	return entries, nil
}

// Len reports how many recipes are currently flagged.
func (l *Ledger) Len(ctx context.Context) (int64, error) {
	if l == nil || l.rdb == nil {
		return 0, nil
	}
	return l.rdb.HLen(ctx, Key).Result()
}
