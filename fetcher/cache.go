package fetcher

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"ewintr.nl/hobbyplan/metrics"
	"ewintr.nl/hobbyplan/model"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

const (
	DefaultSearchCacheTTL = 24 * time.Hour
	searchKeyPrefix       = "hobbyplan:search:"
)

var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type VideoSearcher interface {
	SearchVideos(ctx context.Context, q model.SearchQuery) ([]model.YoutubeVideoID, error)
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{rdb: rdb}, nil
}

func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := rc.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (rc *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return rc.rdb.Set(ctx, key, value, ttl).Err()
}

func (rc *RedisCache) Close() error {
	return rc.rdb.Close()
}

// CachedSearcher keeps search results for a while to save API quota. Search
// costs a hundred times more quota than a details lookup. Cache failures are
// logged and otherwise ignored.
type CachedSearcher struct {
	next   VideoSearcher
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSearcher(next VideoSearcher, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedSearcher {
	if ttl <= 0 {
		ttl = DefaultSearchCacheTTL
	}
	return &CachedSearcher{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (cs *CachedSearcher) SearchVideos(ctx context.Context, q model.SearchQuery) ([]model.YoutubeVideoID, error) {
	key := searchKey(q)

	raw, err := cs.cache.Get(ctx, key)
	switch {
	case err == nil:
		var ids []model.YoutubeVideoID
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			metrics.SearchCache.WithLabelValues("hit").Inc()
			return ids, nil
		}
		cs.logger.Warn("dropping malformed cache entry", slog.String("key", key))
	case !errors.Is(err, ErrCacheMiss):
		cs.logger.Warn("failed to read search cache", slog.String("error", err.Error()))
	}
	metrics.SearchCache.WithLabelValues("miss").Inc()

	ids, err := cs.next.SearchVideos(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	body, err := json.Marshal(ids)
	if err != nil {
		return ids, nil
	}
	if err := cs.cache.Set(ctx, key, string(body), cs.ttl); err != nil {
		cs.logger.Warn("failed to write search cache", slog.String("error", err.Error()))
	}

	return ids, nil
}

func searchKey(q model.SearchQuery) string {
	text := strings.Join(strings.Fields(strings.ToLower(q.Text)), " ")
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%d", text, q.PublishedAfter.UTC().Format(time.DateOnly), q.MaxResults)))
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}
