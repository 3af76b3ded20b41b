package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/popcat-go/internal/scoreboard"
)

// RedisCacheRepository wraps a Repository with Redis caching for the
// leaderboard query. Increments always go to the underlying store; the
// cached board is dropped afterwards so the clicking user sees their own
// click reflected immediately. Readers may observe a board up to ttl old,
// which the polling model tolerates.
type RedisCacheRepository struct {
	store  scoreboard.Repository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCacheRepository creates a new Redis-cached repository decorator.
func NewRedisCacheRepository(
	store scoreboard.Repository, client *redis.Client, ttl time.Duration,
) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:  store,
		client: client,
		prefix: "leaderboard:top:",
		ttl:    ttl,
	}
}

// IncrementAndGet increments in the underlying store and invalidates the
// cached board. Cache invalidation is best-effort: a failure leaves a
// stale board behind for at most ttl.
func (r *RedisCacheRepository) IncrementAndGet(ctx context.Context, country string) (int64, error) {
	total, err := r.store.IncrementAndGet(ctx, country)
	if err != nil {
		return 0, err
	}

	r.client.Del(ctx, r.boardKey(scoreboard.LeaderboardSize))

	return total, nil
}

// TopN returns the leaderboard, checking the cache first.
func (r *RedisCacheRepository) TopN(ctx context.Context, n int) ([]scoreboard.CountryScore, error) {
	if cached, err := r.getFromCache(ctx, n); err == nil {
		return cached, nil
	}

	scores, err := r.store.TopN(ctx, n)
	if err != nil {
		return nil, err
	}

	r.cacheBoard(ctx, n, scores)

	return scores, nil
}

func (r *RedisCacheRepository) boardKey(n int) string {
	return fmt.Sprintf("%s%d", r.prefix, n)
}

func (r *RedisCacheRepository) getFromCache(ctx context.Context, n int) ([]scoreboard.CountryScore, error) {
	payload, err := r.client.Get(ctx, r.boardKey(n)).Bytes()
	if err != nil {
		return nil, err
	}

	var scores []scoreboard.CountryScore
	if err := json.Unmarshal(payload, &scores); err != nil {
		return nil, err
	}

	return scores, nil
}

func (r *RedisCacheRepository) cacheBoard(ctx context.Context, n int, scores []scoreboard.CountryScore) {
	payload, err := json.Marshal(scores)
	if err != nil {
		return
	}

	_ = r.client.Set(ctx, r.boardKey(n), payload, r.ttl).Err()
}

// Compile-time check.
var _ scoreboard.Repository = (*RedisCacheRepository)(nil)
