package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	factionWinsKey   = "gwynt:faction_wins"
	recentMatchesKey = "gwynt:recent_matches"
	recentMatchesMax = 100
)

// RedisRecorder keeps per-faction win tallies and a capped list of recent
// matches.
type RedisRecorder struct {
	client *redis.Client
}

// NewRedisRecorder connects using a redis:// URL.
func NewRedisRecorder(ctx context.Context, redisURL string) (*RedisRecorder, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisRecorder{client: client}, nil
}

// Record bumps the winning faction's tally and pushes rec onto the recent list.
func (r *RedisRecorder) Record(ctx context.Context, rec MatchRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode match %s: %w", rec.ID, err)
	}

	pipe := r.client.TxPipeline()
	if faction := rec.WinningFaction(); faction != "" {
		pipe.HIncrBy(ctx, factionWinsKey, faction, 1)
	}
	pipe.LPush(ctx, recentMatchesKey, payload)
	pipe.LTrim(ctx, recentMatchesKey, 0, recentMatchesMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record match %s: %w", rec.ID, err)
	}
	return nil
}

// FactionWins returns the win tally per faction.
func (r *RedisRecorder) FactionWins(ctx context.Context) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, factionWinsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read faction wins: %w", err)
	}
	out := make(map[string]int64, len(raw))
	for faction, v := range raw {
		n, err := parseTally(v)
		if err != nil {
			return nil, fmt.Errorf("faction %q tally: %w", faction, err)
		}
		out[faction] = n
	}
	return out, nil
}

// parseTally parses a HINCRBY counter. Anything but a base-10 integer is an error.
func parseTally(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

func (r *RedisRecorder) Close() error {
	return r.client.Close()
}
