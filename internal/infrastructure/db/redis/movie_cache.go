package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reelratings/movie-review-api/internal/api/metrics"
	"github.com/reelratings/movie-review-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// MovieCache is a read-through cache for single-movie lookups, keyed
// movie:<id>. It fails safe: any redis error behaves like a cache miss and
// never surfaces to the caller.
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// Get returns the cached movie and whether it was found.
func (c *MovieCache) Get(ctx context.Context, id string) (*domain.Movie, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		metrics.MovieCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var movie domain.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		metrics.MovieCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.MovieCacheTotal.WithLabelValues("hit").Inc()
	return &movie, true
}

// Set stores the movie for cacheTTL. Embedded reviews are not cached; they
// are hydrated fresh on every read.
func (c *MovieCache) Set(ctx context.Context, movie *domain.Movie) {
	if c == nil || c.client == nil || movie == nil {
		return
	}

	stripped := *movie
	stripped.Reviews = nil

	raw, err := json.Marshal(&stripped)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(movie.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after an admin write.
func (c *MovieCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *MovieCache) key(id string) string {
	return fmt.Sprintf("movie:%s", id)
}
