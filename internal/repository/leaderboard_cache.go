package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/attendance/pkg/cleanup"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey     = "attendance:leaderboard"
	generationKey      = "attendance:leaderboard:gen"
	defaultLeaderboard = time.Minute
)

// Stores ARGV[2] under KEYS[2] only while KEYS[1] still holds generation ARGV[1].
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// LeaderboardCache keeps the last computed leaderboard in redis under a single
// key. Every invalidation bumps a generation counter, and a leaderboard computed
// under an older generation is never stored.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(cfg *RedisCfg) *LeaderboardCache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return NewLeaderboardCacheWithClient(client, cfg.TTL)
}

func NewLeaderboardCacheWithClient(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = defaultLeaderboard
	}
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (lc *LeaderboardCache) Get(ctx context.Context) ([]entity.LeaderboardEntry, bool, error) {
	payload, err := lc.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.New("reading cached leaderboard error: " + err.Error())
	}
	entries := make([]entity.LeaderboardEntry, 0)
	if err = sonic.Unmarshal(payload, &entries); err != nil {
		return nil, false, errors.New("decoding cached leaderboard error: " + err.Error())
	}
	return entries, true, nil
}

func (lc *LeaderboardCache) Generation(ctx context.Context) (int64, error) {
	gen, err := lc.client.Get(ctx, generationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errors.New("reading leaderboard generation error: " + err.Error())
	}
	return gen, nil
}

func (lc *LeaderboardCache) Set(ctx context.Context, gen int64, entries []entity.LeaderboardEntry) (bool, error) {
	payload, err := sonic.Marshal(entries)
	if err != nil {
		return false, errors.New("encoding leaderboard error: " + err.Error())
	}
	stored, err := setIfGeneration.Run(ctx, lc.client,
		[]string{generationKey, leaderboardKey},
		strconv.FormatInt(gen, 10), payload, lc.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, errors.New("caching leaderboard error: " + err.Error())
	}
	return stored == 1, nil
}

func (lc *LeaderboardCache) Invalidate(ctx context.Context) error {
	_, err := lc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, leaderboardKey)
		return nil
	})
	if err != nil {
		return errors.New("invalidating leaderboard error: " + err.Error())
	}
	return nil
}

func (lc *LeaderboardCache) Ping(ctx context.Context) error {
	return lc.client.Ping(ctx).Err()
}

// NopLeaderboardCache is used when no redis address is configured. It never hits.
type NopLeaderboardCache struct{}

func (NopLeaderboardCache) Get(ctx context.Context) ([]entity.LeaderboardEntry, bool, error) {
	return nil, false, nil
}

func (NopLeaderboardCache) Generation(ctx context.Context) (int64, error) {
	return 0, nil
}

func (NopLeaderboardCache) Set(ctx context.Context, gen int64, entries []entity.LeaderboardEntry) (bool, error) {
	return false, nil
}

func (NopLeaderboardCache) Invalidate(ctx context.Context) error {
	return nil
}

func (NopLeaderboardCache) Ping(ctx context.Context) error {
	return nil
}
