package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/songcontest/contest-api/internal/core/domain"
)

const defaultTallyTTL = time.Minute

// setIfGeneration stores ARGV[2] under KEYS[1] only while KEYS[2] (missing
// counts as 0) still equals ARGV[1].
var setIfGeneration = redis.NewScript(`
local cur = redis.call('GET', KEYS[2]) or '0'
if cur ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// TallyCache keeps computed participant tallies in Redis.
// Keys: tally:<participant_id> holds the JSON tally, tally:<participant_id>:gen
// the invalidation counter. Counters carry no TTL so a generation never
// goes backwards.
type TallyCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewTallyCache wraps client. A non-positive ttl falls back to defaultTallyTTL.
func NewTallyCache(client redis.UniversalClient, ttl time.Duration) *TallyCache {
	if ttl <= 0 {
		ttl = defaultTallyTTL
	}
	return &TallyCache{client: client, ttl: ttl}
}

// Get reports a miss as (nil, false, nil).
func (c *TallyCache) Get(ctx context.Context, participantID string) (*domain.Tally, bool, error) {
	raw, err := c.client.Get(ctx, key(participantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("tally cache get: %w", err)
	}

	var t domain.Tally
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, false, fmt.Errorf("tally cache decode: %w", err)
	}
	return &t, true, nil
}

func (c *TallyCache) Generation(ctx context.Context, participantID string) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(participantID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("tally cache generation: %w", err)
	}
	return gen, nil
}

func (c *TallyCache) Set(ctx context.Context, t *domain.Tally, generation int64) (bool, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return false, fmt.Errorf("tally cache encode: %w", err)
	}
	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{key(t.ParticipantID), genKey(t.ParticipantID)},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("tally cache set: %w", err)
	}
	return stored == 1, nil
}

// Invalidate bumps each generation and drops the cached value in one
// MULTI/EXEC, so a concurrent Set lands either before (and is deleted) or
// after (and is rejected).
func (c *TallyCache) Invalidate(ctx context.Context, participantIDs ...string) error {
	if len(participantIDs) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range participantIDs {
			pipe.Incr(ctx, genKey(id))
			pipe.Del(ctx, key(id))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tally cache invalidate: %w", err)
	}
	return nil
}

func key(participantID string) string {
	return "tally:" + participantID
}

func genKey(participantID string) string {
	return key(participantID) + ":gen"
}
